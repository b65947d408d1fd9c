package controllers

import (
	"net/http"
	"strconv"

	"travelbuddy/global"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis"
)

// GetTopDestinations 返回 Top N 热门目的地（Redis ZSET）
func GetTopDestinations(ctx *gin.Context) {
	if global.RedisDB == nil {
		ctx.JSON(http.StatusOK, gin.H{"list": []gin.H{}})
		return
	}

	topStr := ctx.DefaultQuery("top", "10")
	top, err := strconv.Atoi(topStr)
	if err != nil || top <= 0 {
		top = 10
	}

	rankKey := "rank:destinations:visited"
	zres, err := global.RedisDB.ZRevRangeWithScores(rankKey, 0, int64(top-1)).Result()
	if err != nil {
		if err == redis.Nil {
			ctx.JSON(http.StatusOK, gin.H{"list": []gin.H{}})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	list := make([]map[string]interface{}, 0, len(zres))
	for idx, z := range zres {
		country, _ := z.Member.(string)
		list = append(list, map[string]interface{}{
			"country":  country,
			"visitors": int64(z.Score),
			"rank":     idx + 1,
		})
	}

	ctx.JSON(http.StatusOK, gin.H{"list": list})
}

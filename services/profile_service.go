package services

import (
	"encoding/json"
	"strings"
	"sync"
	"time"
	"unicode"

	"travelbuddy/global"
	"travelbuddy/models"

	"gorm.io/gorm"
)

// Profile 对外返回的用户旅行档案
type Profile struct {
	UserID           string                 `json:"user_id"`
	VisitedCountries []string               `json:"visited_countries"`
	Preferences      map[string]interface{} `json:"preferences"`
	TravelHistory    []TravelRecord         `json:"travel_history"`
	CreatedAt        string                 `json:"created_at"`
	UpdatedAt        string                 `json:"updated_at,omitempty"`
}

type TravelRecord struct {
	Country   string `json:"country"`
	VisitDate string `json:"visit_date"`
}

// 没配数据库时退化成进程内存储（原型模式）
var (
	memProfiles   = make(map[string]*Profile)
	memProfilesMu sync.Mutex
)

// memGetOrCreate 调用方必须已持有 memProfilesMu
func memGetOrCreate(userID string) *Profile {
	p, ok := memProfiles[userID]
	if !ok {
		p = &Profile{
			UserID:           userID,
			VisitedCountries: []string{},
			Preferences:      map[string]interface{}{},
			TravelHistory:    []TravelRecord{},
			CreatedAt:        nowISO(),
		}
		memProfiles[userID] = p
	}
	return p
}

// cloneProfile 深拷贝快照。mem 路径一律返回快照，
// 调用方序列化时才不会跟并发写共享同一底层 slice/map
func cloneProfile(p *Profile) *Profile {
	cp := *p
	cp.VisitedCountries = append([]string{}, p.VisitedCountries...)
	cp.TravelHistory = append([]TravelRecord{}, p.TravelHistory...)
	cp.Preferences = make(map[string]interface{}, len(p.Preferences))
	for k, v := range p.Preferences {
		cp.Preferences[k] = v
	}
	return &cp
}

// TitleCaseCountry normalizes a country name: trimmed, each word capitalized.
func TitleCaseCountry(country string) string {
	words := strings.Fields(strings.TrimSpace(country))
	for i, w := range words {
		r := []rune(strings.ToLower(w))
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

func nowISO() string {
	return time.Now().Format(time.RFC3339)
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func decodeCountryList(s string) []string {
	list := []string{}
	if s != "" {
		// 解析失败按空列表处理
		_ = json.Unmarshal([]byte(s), &list)
	}
	return list
}

func encodeCountryList(list []string) string {
	data, err := json.Marshal(list)
	if err != nil {
		return "[]"
	}
	return string(data)
}

// GetOrCreateProfile 不存在则创建空档案
func GetOrCreateProfile(userID string) (*Profile, error) {
	if global.Db == nil {
		memProfilesMu.Lock()
		defer memProfilesMu.Unlock()
		return cloneProfile(memGetOrCreate(userID)), nil
	}

	row, err := getOrCreateProfileRow(userID)
	if err != nil {
		return nil, err
	}
	return assembleProfile(row)
}

func getOrCreateProfileRow(userID string) (*models.UserProfile, error) {
	var row models.UserProfile
	err := global.Db.Where("user_id = ?", userID).First(&row).Error
	if err == gorm.ErrRecordNotFound {
		row = models.UserProfile{UserID: userID, Preferences: "{}", VisitedCountries: "[]"}
		if err := global.Db.Create(&row).Error; err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}
	return &row, nil
}

func assembleProfile(row *models.UserProfile) (*Profile, error) {
	prefs := map[string]interface{}{}
	if row.Preferences != "" {
		// 解析失败按空偏好处理
		_ = json.Unmarshal([]byte(row.Preferences), &prefs)
	}

	var visits []models.VisitedCountry
	if err := global.Db.Where("user_id = ?", row.UserID).Order("id asc").Find(&visits).Error; err != nil {
		return nil, err
	}

	history := []TravelRecord{}
	for _, v := range visits {
		history = append(history, TravelRecord{Country: v.Country, VisitDate: v.VisitDate})
	}

	return &Profile{
		UserID:           row.UserID,
		VisitedCountries: decodeCountryList(row.VisitedCountries),
		Preferences:      prefs,
		TravelHistory:    history,
		CreatedAt:        row.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        row.UpdatedAt.Format(time.RFC3339),
	}, nil
}

// UpdateProfile 覆盖 visited_countries 和/或 preferences，旅行历史保持原样
func UpdateProfile(userID string, visited []string, prefs map[string]interface{}) (*Profile, error) {
	if global.Db == nil {
		memProfilesMu.Lock()
		defer memProfilesMu.Unlock()
		p := memGetOrCreate(userID)
		if visited != nil {
			p.VisitedCountries = append([]string{}, visited...)
		}
		if prefs != nil {
			p.Preferences = prefs
		}
		p.UpdatedAt = nowISO()
		return cloneProfile(p), nil
	}

	if _, err := getOrCreateProfileRow(userID); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if prefs != nil {
		data, err := json.Marshal(prefs)
		if err != nil {
			return nil, err
		}
		updates["preferences"] = string(data)
	}
	if visited != nil {
		// 只改去重列表列，VisitedCountry 历史记录不动
		updates["visited_countries"] = encodeCountryList(visited)
	}
	if len(updates) > 0 {
		if err := global.Db.Model(&models.UserProfile{}).
			Where("user_id = ?", userID).
			Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	var row models.UserProfile
	if err := global.Db.Where("user_id = ?", userID).First(&row).Error; err != nil {
		return nil, err
	}
	return assembleProfile(&row)
}

// AddVisitedCountry 添加去过的国家，重复时只补历史不加列表
func AddVisitedCountry(userID, country, visitDate string) (*Profile, bool, error) {
	country = TitleCaseCountry(country)
	if visitDate == "" {
		visitDate = nowISO()
	}

	if global.Db == nil {
		memProfilesMu.Lock()
		p := memGetOrCreate(userID)
		added := !containsString(p.VisitedCountries, country)
		if added {
			p.VisitedCountries = append(p.VisitedCountries, country)
		}
		p.TravelHistory = append(p.TravelHistory, TravelRecord{Country: country, VisitDate: visitDate})
		snap := cloneProfile(p)
		memProfilesMu.Unlock()
		bumpDestinationRank(country)
		return snap, added, nil
	}

	row, err := getOrCreateProfileRow(userID)
	if err != nil {
		return nil, false, err
	}

	list := decodeCountryList(row.VisitedCountries)
	added := !containsString(list, country)
	if added {
		list = append(list, country)
		if err := global.Db.Model(&models.UserProfile{}).
			Where("user_id = ?", userID).
			Update("visited_countries", encodeCountryList(list)).Error; err != nil {
			return nil, false, err
		}
	}

	rec := models.VisitedCountry{UserID: userID, Country: country, VisitDate: visitDate}
	if err := global.Db.Create(&rec).Error; err != nil {
		return nil, false, err
	}

	bumpDestinationRank(country)

	if err := global.Db.Where("user_id = ?", userID).First(row).Error; err != nil {
		return nil, false, err
	}
	p, err := assembleProfile(row)
	return p, added, err
}

// AddVisitedCountries 批量添加。已在列表里的国家整条跳过，历史也不补
func AddVisitedCountries(userID string, countries []string) (*Profile, int, error) {
	added := 0

	if global.Db == nil {
		memProfilesMu.Lock()
		p := memGetOrCreate(userID)
		var fresh []string
		for _, raw := range countries {
			country := TitleCaseCountry(raw)
			if country == "" || containsString(p.VisitedCountries, country) {
				continue
			}
			p.VisitedCountries = append(p.VisitedCountries, country)
			p.TravelHistory = append(p.TravelHistory, TravelRecord{Country: country, VisitDate: nowISO()})
			fresh = append(fresh, country)
			added++
		}
		if added > 0 {
			p.UpdatedAt = nowISO()
		}
		snap := cloneProfile(p)
		memProfilesMu.Unlock()
		for _, c := range fresh {
			bumpDestinationRank(c)
		}
		return snap, added, nil
	}

	row, err := getOrCreateProfileRow(userID)
	if err != nil {
		return nil, 0, err
	}

	list := decodeCountryList(row.VisitedCountries)
	for _, raw := range countries {
		country := TitleCaseCountry(raw)
		if country == "" || containsString(list, country) {
			continue
		}
		list = append(list, country)
		rec := models.VisitedCountry{UserID: userID, Country: country, VisitDate: nowISO()}
		if err := global.Db.Create(&rec).Error; err != nil {
			return nil, 0, err
		}
		bumpDestinationRank(country)
		added++
	}
	if added > 0 {
		if err := global.Db.Model(&models.UserProfile{}).
			Where("user_id = ?", userID).
			Update("visited_countries", encodeCountryList(list)).Error; err != nil {
			return nil, 0, err
		}
	}

	if err := global.Db.Where("user_id = ?", userID).First(row).Error; err != nil {
		return nil, 0, err
	}
	p, err := assembleProfile(row)
	return p, added, err
}

// RemoveVisitedCountry 从列表删除，不存在返回 false；历史记录保留
func RemoveVisitedCountry(userID, country string) (*Profile, bool, error) {
	if global.Db == nil {
		memProfilesMu.Lock()
		defer memProfilesMu.Unlock()
		p, ok := memProfiles[userID]
		if !ok {
			return nil, false, nil
		}
		found := false
		kept := p.VisitedCountries[:0]
		for _, c := range p.VisitedCountries {
			if c == country {
				found = true
				continue
			}
			kept = append(kept, c)
		}
		p.VisitedCountries = kept
		return cloneProfile(p), found, nil
	}

	var row models.UserProfile
	err := global.Db.Where("user_id = ?", userID).First(&row).Error
	if err == gorm.ErrRecordNotFound {
		return nil, false, nil
	} else if err != nil {
		return nil, false, err
	}

	list := decodeCountryList(row.VisitedCountries)
	found := false
	kept := []string{}
	for _, c := range list {
		if c == country {
			found = true
			continue
		}
		kept = append(kept, c)
	}
	if !found {
		return nil, false, nil
	}

	if err := global.Db.Model(&models.UserProfile{}).
		Where("user_id = ?", userID).
		Update("visited_countries", encodeCountryList(kept)).Error; err != nil {
		return nil, false, err
	}

	if err := global.Db.Where("user_id = ?", userID).First(&row).Error; err != nil {
		return nil, false, err
	}
	p, err := assembleProfile(&row)
	return p, true, err
}

// CountProfiles 健康检查用
func CountProfiles() int64 {
	if global.Db == nil {
		memProfilesMu.Lock()
		defer memProfilesMu.Unlock()
		return int64(len(memProfiles))
	}
	var count int64
	global.Db.Model(&models.UserProfile{}).Count(&count)
	return count
}

// bumpDestinationRank 热门目的地排行（Redis ZSET），未配 Redis 时跳过
func bumpDestinationRank(country string) {
	if global.RedisDB == nil {
		return
	}
	global.RedisDB.ZIncrBy("rank:destinations:visited", 1, country)
}

// seed-data writes the bundled sample travel guides into the data directory
// so the server has something to index on first start.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
)

var sampleDocuments = map[string]string{
	"japan-activities.txt": `Japan Travel Guide - Activities and Attractions

TOKYO
Must-Visit Attractions:
- Senso-ji Temple: Tokyo's oldest temple in Asakusa. Best visited early morning to avoid crowds. Free entry.
- Tsukiji Outer Market: Famous for fresh sushi and street food. Open from 5 AM. Budget: $20-40 per person.
- Shibuya Crossing: World's busiest pedestrian crossing. Visit at night for the full neon experience.
- TeamLab Borderless: Digital art museum in Odaiba. Tickets: $30. Book in advance.
- Tokyo Skytree: 634m tower with observation decks. Tickets: $20-30. Best at sunset.

Food Experiences:
- Ramen tasting tour in Shinjuku: Try different regional styles. Budget: $30-50.
- Sushi making class: Learn from a master chef. 3 hours, $80-100.
- Izakaya hopping in Shibuya: Traditional Japanese pub crawl. Budget: $40-60.

KYOTO
Cultural Highlights:
- Fushimi Inari Shrine: Famous for thousands of red torii gates. Free entry, allow 2-3 hours.
- Kinkaku-ji (Golden Pavilion): Stunning gold-covered temple. Entry: $5. Best in morning light.
- Arashiyama Bamboo Grove: Walk through towering bamboo forest. Free, best early morning.
- Gion District: Traditional geisha district. Free to walk around, best at dusk.

OSAKA
Food Paradise:
- Dotonbori: Neon-lit food street. Try takoyaki and okonomiyaki. Budget: $20-30.
- Kuromon Market: "Osaka's Kitchen" with fresh seafood and street food.
- Kushikatsu alley: Deep-fried skewers on sticks. Budget: $25-40.

MOUNT FUJI & HAKONE
Nature Activities:
- Mount Fuji climbing (July-September): 5-7 hour ascent. Guided tours: $100-150.
- Hakone Open-Air Museum: Sculpture garden with mountain views. Entry: $15.
- Lake Ashi Cruise: Scenic boat ride with Fuji views. Tickets: $10-15.

Transportation Tips:
- JR Pass: 7-day unlimited train pass ($280) worth it if traveling between cities.
- IC Card (Suica/Pasmo): $5 deposit, works on all trains and buses.
- Pocket WiFi rental: $8-10 per day.
`,

	"europe-destinations.txt": `European Travel Guide - Top Destinations

ITALY
Rome: Perfect for history lovers and food enthusiasts. Budget: $100-150/day moderate, $200+ luxury.
Highlights: Colosseum, Vatican City, Roman Forum, Trevi Fountain, Trastevere neighborhood.
Best time: April-May, September-October. Summer very crowded and hot.
Insider tip: Book Colosseum and Vatican tickets online weeks in advance to skip massive lines.

Florence: Renaissance art capital. Budget: $80-120/day.
Must-see: Uffizi Gallery, Duomo, Michelangelo's David, Ponte Vecchio.
Best for: Art lovers, architecture enthusiasts, wine tasting in nearby Tuscany.

Venice: Unique floating city. Budget: $120-180/day.
Experiences: Gondola ride, St. Mark's Basilica, Doge's Palace, Rialto Market.
Tips: Visit in fall or winter to avoid massive crowds.

FRANCE
Paris: Cultural hub perfect for first-time Europe visitors. Budget: $120-200/day.
Icons: Eiffel Tower, Louvre, Notre-Dame, Champs-Elysees, Montmartre.
Best season: Spring (April-June) for perfect weather and blooming gardens.

SPAIN
Barcelona: Creative, vibrant city. Budget: $90-140/day.
Gaudi masterpieces: Sagrada Familia, Park Guell, Casa Batllo.
Best for: Architecture fans, beach plus city combo, food lovers.

GREECE
Athens: Ancient history comes alive. Budget: $70-110/day.
Must-visit: Acropolis, Parthenon, Ancient Agora, Plaka neighborhood.
Combine with: Island hopping to Santorini or Mykonos.
Greek Islands best time: May-June or September-October. July-August very crowded and expensive.

PORTUGAL
Lisbon: Trendy European capital on budget. Budget: $70-110/day.
Experiences: Tram 28 ride, Belem Tower, Jeronimos Monastery, Fado music.
Best for: Budget travelers, foodies, great weather year-round.

Travel Tips:
- Schengen Visa: Covers most European countries, allows 90 days in a 180-day period.
- Rail passes: Eurail pass good value if visiting multiple countries.
- Best time: Shoulder seasons (April-May, September-October) for fewer crowds and good weather.
`,

	"southeast-asia-guide.txt": `Southeast Asia Travel Guide

THAILAND
Bangkok: Vibrant capital city. Budget: $30-50/day.
Must-see: Grand Palace, Wat Pho (Reclining Buddha), Wat Arun, floating markets, Khao San Road.
Food: Street food paradise. Try pad thai, som tam, mango sticky rice.
Best for: First-time Asia travelers, foodies, budget travelers.

Chiang Mai: Northern cultural hub. Budget: $25-40/day.
Activities: Temple hopping (300+ temples), elephant sanctuaries, Thai cooking classes.
Perfect for: Digital nomads, nature lovers, culture seekers.

VIETNAM
Hanoi: Chaotic but charming capital. Budget: $30-45/day.
Highlights: Old Quarter, Hoan Kiem Lake, street food tours, cyclo rides.
Day trips: Ha Long Bay cruise (UNESCO site).

Hoi An: Ancient town UNESCO site. Budget: $25-40/day.
Attractions: Japanese Bridge, lantern-lit old town, custom tailors.

CAMBODIA
Siem Reap (Angkor Wat): Temple complex wonder. Budget: $30-45/day.
Temples: Angkor Wat sunrise, Bayon, Ta Prohm.
Passes: 1-day ($37), 3-day ($62). Hire a tuk-tuk driver for temples.
Best time: November-February (cool and dry).

INDONESIA
Bali: Island of Gods. Budget: $35-70/day depending on area.
Ubud: Rice terraces, monkey forest, yoga retreats, art galleries.
Seminyak and Canggu: Beaches, surf, beach clubs, sunset bars.
Best for: Wellness seekers, surfers, digital nomads, honeymooners.

SINGAPORE
City-state hub. Budget: $80-150/day.
Attractions: Marina Bay Sands, Gardens by the Bay, Sentosa Island, hawker centers.
Perfect for: Stopover destination, food lovers, safe introduction to Asia.

Regional Travel Tips:
- Visas: Most offer visa on arrival or e-visa. Check requirements.
- Transportation: Buses, trains, budget airlines (AirAsia, VietJet). Book ahead for popular routes.
- Food: Street food ($1-3), local restaurants ($3-8), western food ($8-15).
- Best time: Generally November-February (cool and dry), avoid monsoon season.
- Respect: Dress modestly at temples, remove shoes when entering homes and temples.
`,
}

func main() {
	dataDir := flag.String("dir", "data", "target data directory")
	flag.Parse()

	if err := os.MkdirAll(*dataDir, 0o755); err != nil {
		log.Fatalf("create data dir: %v", err)
	}

	for name, content := range sampleDocuments {
		path := filepath.Join(*dataDir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			log.Fatalf("write %s: %v", name, err)
		}
		log.Println("created", path)
	}

	log.Printf("created %d sample documents in %s, start the server to index them", len(sampleDocuments), *dataDir)
}

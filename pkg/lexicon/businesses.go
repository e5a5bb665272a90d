package lexicon

// businessEntries holds tourism operators and attractions. Business tier and
// demo flags feed commercial scoring only; they never change how text is
// corrected.
func businessEntries() []Entry {
	business := func(correct, meaning string, region Region, tier BusinessTier, confidence int, variants ...string) Entry {
		return Entry{
			Tier:         TierTourismBusiness,
			Variants:     variants,
			Correct:      correct,
			Meaning:      meaning,
			Category:     CategoryBusiness,
			Confidence:   confidence,
			Significance: SignificanceHigh,
			Region:       region,
			BusinessTier: tier,
		}
	}

	koTane := business("Ko Tāne", "Māori cultural experience at Willowbank, Ōtautahi", RegionCanterbury, BusinessTierA, 93,
		"ko tane", "kotane", "ko tarne", "ko taane", "ko tahne")
	koTane.PerfectDemo = true
	koTane.Significance = SignificanceHighest
	koTane.Demos = []string{"christchurch_cultural", "ngai_tahu_tourism"}

	tePuia := business("Te Puia", "geothermal park and carving institute, Rotorua", RegionRotorua, BusinessTierA, 92,
		"te puia", "the puia", "te pooia", "tepuia")
	tePuia.Demos = []string{"rotorua_geothermal"}

	whaka := business("Whakarewarewa Living Māori Village", "living village of Ngāti Wāhiao", RegionRotorua, BusinessTierA, 92,
		"whakarewarewa living maori village", "whaka living maori village", "wakarewarewa living maori village")
	whaka.Demos = []string{"rotorua_geothermal"}

	tamaki := business("Tamaki Māori Village", "evening cultural experience near Rotorua", RegionRotorua, BusinessTierA, 92,
		"tamaki maori village", "tamarki maori village", "tamaki mari village")
	tamaki.Demos = []string{"rotorua_geothermal"}

	whale := business("Whale Watch Kaikōura", "Ngāti Kurī owned whale watching", RegionKaikoura, BusinessTierA, 92,
		"whale watch kaikoura", "whale watch kai koura", "whalewatch kaikoura")
	whale.Demos = []string{"kaikoura_coast"}

	tourism := business("Ngāi Tahu Tourism", "tourism arm of Ngāi Tahu Holdings", RegionAll, BusinessTierA, 94,
		"ngai tahu tourism", "ngaitahu tourism", "ngai tahoo tourism")
	tourism.Demos = []string{"ngai_tahu_tourism"}

	teAna := business("Te Ana Māori Rock Art Centre", "rock art interpretation centre, Timaru", RegionCanterbury, BusinessTierB, 90,
		"te ana maori rock art centre", "te ana rock art centre", "tana maori rock art centre")
	teAna.Demos = []string{"ngai_tahu_tourism"}

	return []Entry{
		koTane,
		tePuia,
		whaka,
		tamaki,
		whale,
		tourism,
		teAna,
		business("Mitai Māori Village", "whānau-run cultural evening, Rotorua", RegionRotorua, BusinessTierB, 90,
			"mitai maori village", "mitay maori village", "mytai maori village"),
		business("Tikitere", "Hell's Gate geothermal reserve", RegionRotorua, BusinessTierB, 88,
			"tiki tere", "tikiterre", "tikitiri"),
		business("Te Wairoa Buried Village", "excavated village buried by Tarawera", RegionRotorua, BusinessTierB, 88,
			"te wairoa buried village", "te wai roa buried village", "tewairoa buried village"),
		business("Willowbank Wildlife Reserve", "wildlife park that hosts Ko Tāne", RegionCanterbury, BusinessTierB, 88,
			"willow bank wildlife reserve", "willowbank wild life reserve"),
		business("Rainbow Springs", "kiwi hatchery and nature park, Rotorua", RegionRotorua, BusinessTierC, 85,
			"rainbow spring", "rain bow springs"),
		business("Ōtākaro Orchard", "community food forest on the Ōtākaro", RegionCanterbury, BusinessTierC, 85,
			"otakaro orchard", "o takaro orchard"),
	}
}

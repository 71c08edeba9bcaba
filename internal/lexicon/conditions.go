package lexicon

// conditionSynonyms maps condition keywords to canonical condition tags.
// Several keywords collapse into one tag ("depression" and "mood" are both
// "mood"). Ordered for deterministic first-seen detection.
var conditionSynonyms = []Synonym{
	{"injury", "injury"},
	{"healing", "healing"},
	{"tendon", "tendon injury"},
	{"muscle", "muscle"},
	{"fat loss", "weight loss"},
	{"weight loss", "weight loss"},
	{"sleep", "sleep"},
	{"insomnia", "sleep"},
	{"can't sleep", "sleep"},
	{"cognitive", "cognitive"},
	{"memory", "cognitive"},
	{"anxiety", "anxiety"},
	{"depression", "mood"},
	{"mood", "mood"},
	{"skin", "skin"},
	{"hair", "hair loss"},
	{"aging", "anti-aging"},
	{"gut", "gut health"},
	{"inflammation", "inflammation"},
	{"immune", "immune"},
	{"sexual", "sexual health"},
	{"libido", "sexual health"},
	{"cancer", "cancer"},
	{"tumor", "cancer"},
	{"oncology", "cancer"},
	{"chemo", "cancer recovery"},
	{"radiation", "cancer recovery"},
	{"remission", "cancer recovery"},
	{"autoimmune", "autoimmune"},
	{"arthritis", "arthritis"},
	{"joint", "joint pain"},
	{"chronic pain", "pain"},
	{"fibromyalgia", "chronic pain"},
	{"diabetes", "metabolic"},
	{"insulin", "metabolic"},
	{"blood sugar", "metabolic"},
	{"thyroid", "thyroid"},
	{"hormone", "hormonal"},
	{"testosterone", "hormonal"},
	{"fertility", "fertility"},
	{"erectile", "erectile dysfunction"},
	{"recovery", "recovery"},
	{"surgery", "post-surgery"},
	{"wound", "wound healing"},
}

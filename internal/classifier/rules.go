package classifier

// departmentRule pairs a department name with its keyword list. Order
// matters: the first-seen highest score wins on ties, so the table order is
// part of the classification contract.
type departmentRule struct {
	Name     string
	Keywords []string
}

// departmentRules is the fixed department-routing table. Keywords are
// matched as whole words/phrases, case-insensitively.
var departmentRules = []departmentRule{
	{
		Name: "Infrastructure",
		Keywords: []string{
			"streetlight", "light", "electricity", "power", "signal", "traffic light",
			"crosswalk", "pedestrian", "pole", "wire", "cable", "transformer", "electric",
			"parking garage", "tunnel", "bridge", "overpass", "underpass",
		},
	},
	{
		Name: "Roads",
		Keywords: []string{
			"pothole", "road", "street", "pavement", "asphalt", "crack", "bump",
			"highway", "lane", "bike lane", "footpath", "sidewalk", "curb", "intersection",
			"speed breaker", "divider", "median", "gravel", "debris",
		},
	},
	{
		Name: "Sanitation",
		Keywords: []string{
			"garbage", "trash", "waste", "dump", "litter", "bin", "collection",
			"pickup", "smell", "odor", "rat", "pest", "rodent", "cockroach", "filth",
			"dirty", "sewage", "drainage", "overflow", "overflowing", "hygiene",
		},
	},
	{
		Name: "Water",
		Keywords: []string{
			"water", "pipe", "leak", "main", "flood", "flooding", "burst",
			"supply", "tap", "drinkable", "contaminated", "sewage", "drain", "storm drain",
			"gutter", "puddle", "waterlogging",
		},
	},
	{
		Name: "Parks",
		Keywords: []string{
			"park", "garden", "playground", "tree", "bush", "plant", "grass",
			"bench", "fountain", "trail", "pathway", "recreation", "green", "graffiti",
			"vandal", "restroom", "public toilet", "swing", "slide", "equipment",
		},
	},
	{
		Name: "Transit",
		Keywords: []string{
			"bus", "stop", "route", "schedule", "metro", "train", "transit",
			"transport", "commute", "timetable", "shelter", "platform", "ticket", "fare",
		},
	},
	{
		Name: "Parking",
		Keywords: []string{
			"parking", "car", "vehicle", "abandoned", "illegal", "tow",
			"double park", "blocking", "driveway", "garage", "permit", "fine", "challan",
		},
	},
}

// highUrgencyKeywords signal danger or long-standing neglect. Duration terms
// (week, month) are included because unresolved long-running issues get
// escalated.
var highUrgencyKeywords = []string{
	"danger", "dangerous", "urgent", "emergency", "safety", "hazard", "hazardous",
	"accident", "injury", "injure", "hurt", "blood", "fire", "burning", "flood",
	"flooding", "burst", "collapse", "fallen", "fell", "broken", "sparking",
	"electrocution", "electric shock", "gas leak", "toxic", "poisonous", "death",
	"dead", "critical", "immediately", "asap", "serious", "severe", "extreme",
	"week", "weeks", "month", "months",
}

// mediumUrgencyKeywords signal ongoing nuisance rather than acute danger.
var mediumUrgencyKeywords = []string{
	"inconvenient", "problem", "issue", "affecting", "blocked", "clogged",
	"overflowing", "damaged", "broken", "cracked", "missing", "not working",
	"dirty", "smelly", "pest", "rats", "dark", "unsafe", "repeated", "again",
	"still", "ongoing", "continues", "nobody", "no one", "ignored",
}

// Departments returns the department names in table order.
func Departments() []string {
	names := make([]string, len(departmentRules))
	for i, rule := range departmentRules {
		names[i] = rule.Name
	}
	return names
}

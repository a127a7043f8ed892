package team

// DefaultAliases is the club alias table. Declaration order matters: the
// substring scan returns the first entry that matches. Football and
// basketball clubs that share a display name (Real Madrid, Barcelona) are
// listed twice under the same key and merged into the first position.
func DefaultAliases() []Entry {
	return []Entry{
		// LaLiga
		{Key: "barcelona", Aliases: []string{"barcelona", "fc barcelona", "barca", "barça", "fcb", "blaugrana"}},
		{Key: "real madrid", Aliases: []string{"real madrid", "madrid", "real", "los blancos", "merengues", "rmcf"}},
		{Key: "atletico madrid", Aliases: []string{"atletico madrid", "atlético madrid", "atleti", "atletico", "atlético", "colchoneros"}},
		{Key: "sevilla", Aliases: []string{"sevilla", "sevilla fc", "sevillistas"}},
		{Key: "real betis", Aliases: []string{"betis", "real betis", "real betis balompié", "verdiblancos"}},
		{Key: "valencia", Aliases: []string{"valencia", "valencia cf", "valencia club de futbol", "los che"}},
		{Key: "villarreal", Aliases: []string{"villarreal", "villarreal cf", "el submarino amarillo", "yellow submarine"}},
		{Key: "athletic bilbao", Aliases: []string{"athletic bilbao", "athletic club", "los leones", "athletic"}},
		{Key: "real sociedad", Aliases: []string{"real sociedad", "la real", "txuri-urdin"}},
		{Key: "osasuna", Aliases: []string{"osasuna", "ca osasuna", "los rojillos"}},
		{Key: "mallorca", Aliases: []string{"mallorca", "rcd mallorca", "los bermellones"}},
		{Key: "espanyol", Aliases: []string{"espanyol", "rcd espanyol", "periquitos"}},
		{Key: "celta vigo", Aliases: []string{"celta vigo", "celta", "celta de vigo", "rc celta", "célticos"}},
		{Key: "getafe", Aliases: []string{"getafe", "getafe cf", "azulones"}},
		{Key: "valladolid", Aliases: []string{"valladolid", "real valladolid", "blanquivioletas", "pucelanos"}},
		{Key: "leganes", Aliases: []string{"leganes", "leganés", "cd leganés", "pepineros"}},
		{Key: "alaves", Aliases: []string{"alaves", "alavés", "deportivo alavés", "babazorros"}},
		{Key: "girona", Aliases: []string{"girona", "girona fc"}},
		{Key: "rayo vallecano", Aliases: []string{"rayo vallecano", "rayo", "los franjirrojos"}},
		{Key: "las palmas", Aliases: []string{"las palmas", "ud las palmas", "amarillos"}},

		// Premier League
		{Key: "liverpool", Aliases: []string{"liverpool", "liverpool fc", "liverpool f.c.", "lfc", "the reds", "reds"}},
		{Key: "manchester united", Aliases: []string{"manchester united", "man united", "man utd", "united", "mufc", "red devils"}},
		{Key: "manchester city", Aliases: []string{"manchester city", "man city", "city", "mcfc", "citizens", "sky blues"}},
		{Key: "chelsea", Aliases: []string{"chelsea", "chelsea fc", "cfc", "blues", "the pensioners"}},
		{Key: "arsenal", Aliases: []string{"arsenal", "arsenal fc", "the gunners", "gunners", "afc"}},
		{Key: "tottenham", Aliases: []string{"tottenham", "tottenham hotspur", "spurs", "thfc"}},
		{Key: "leicester", Aliases: []string{"leicester", "leicester city", "foxes", "lcfc"}},
		{Key: "west ham", Aliases: []string{"west ham", "west ham united", "hammers", "irons", "whu"}},
		{Key: "everton", Aliases: []string{"everton", "everton fc", "the toffees", "toffees", "efc"}},
		{Key: "newcastle", Aliases: []string{"newcastle", "newcastle united", "magpies", "toon", "nufc"}},
		{Key: "aston villa", Aliases: []string{"aston villa", "villa", "villans", "avfc"}},
		{Key: "wolverhampton", Aliases: []string{"wolverhampton", "wolves", "wolverhampton wanderers", "wwfc"}},
		{Key: "southampton", Aliases: []string{"southampton", "saints", "soton", "southampton fc"}},
		{Key: "crystal palace", Aliases: []string{"crystal palace", "palace", "eagles", "cpfc"}},
		{Key: "brighton", Aliases: []string{"brighton", "brighton & hove albion", "brighton and hove albion", "seagulls", "bha"}},
		{Key: "burnley", Aliases: []string{"burnley", "burnley fc", "clarets"}},
		{Key: "leeds", Aliases: []string{"leeds", "leeds united", "leeds utd", "whites", "peacocks", "lufc"}},
		{Key: "brentford", Aliases: []string{"brentford", "brentford fc", "bees"}},
		{Key: "norwich", Aliases: []string{"norwich", "norwich city", "canaries", "ncfc"}},
		{Key: "watford", Aliases: []string{"watford", "watford fc", "hornets"}},
		{Key: "nottingham forest", Aliases: []string{"nottingham forest", "nottm forest", "forest", "nffc", "tricky trees"}},
		{Key: "fulham", Aliases: []string{"fulham", "fulham fc", "cottagers", "whites", "ffc"}},
		{Key: "bournemouth", Aliases: []string{"bournemouth", "afc bournemouth", "cherries"}},
		{Key: "ipswich", Aliases: []string{"ipswich", "ipswich town", "tractor boys", "itfc"}},

		// NBA
		{Key: "lakers", Aliases: []string{"lakers", "los angeles lakers", "la lakers", "los angeles", "purple and gold"}},
		{Key: "celtics", Aliases: []string{"celtics", "boston celtics", "boston", "c's"}},
		{Key: "warriors", Aliases: []string{"warriors", "golden state warriors", "golden state", "dubs", "gsw"}},
		{Key: "bulls", Aliases: []string{"bulls", "chicago bulls", "chicago"}},
		{Key: "heat", Aliases: []string{"heat", "miami heat", "miami"}},
		{Key: "bucks", Aliases: []string{"bucks", "milwaukee bucks", "milwaukee"}},
		{Key: "mavericks", Aliases: []string{"mavericks", "dallas mavericks", "dallas", "mavs"}},
		{Key: "nets", Aliases: []string{"nets", "brooklyn nets", "brooklyn"}},
		{Key: "knicks", Aliases: []string{"knicks", "new york knicks", "new york", "ny knicks"}},
		{Key: "76ers", Aliases: []string{"76ers", "philadelphia 76ers", "philadelphia", "phila", "sixers"}},
		{Key: "suns", Aliases: []string{"suns", "phoenix suns", "phoenix"}},
		{Key: "spurs", Aliases: []string{"spurs", "san antonio spurs", "san antonio"}},
		{Key: "nuggets", Aliases: []string{"nuggets", "denver nuggets", "denver"}},
		{Key: "clippers", Aliases: []string{"clippers", "los angeles clippers", "la clippers"}},
		{Key: "cavaliers", Aliases: []string{"cavaliers", "cleveland cavaliers", "cleveland", "cavs"}},
		{Key: "hawks", Aliases: []string{"hawks", "atlanta hawks", "atlanta"}},
		{Key: "grizzlies", Aliases: []string{"grizzlies", "memphis grizzlies", "memphis"}},
		{Key: "pelicans", Aliases: []string{"pelicans", "new orleans pelicans", "new orleans"}},
		{Key: "rockets", Aliases: []string{"rockets", "houston rockets", "houston"}},
		{Key: "jazz", Aliases: []string{"jazz", "utah jazz", "utah"}},
		{Key: "kings", Aliases: []string{"kings", "sacramento kings", "sacramento"}},
		{Key: "magic", Aliases: []string{"magic", "orlando magic", "orlando"}},
		{Key: "pacers", Aliases: []string{"pacers", "indiana pacers", "indiana"}},
		{Key: "pistons", Aliases: []string{"pistons", "detroit pistons", "detroit"}},
		{Key: "raptors", Aliases: []string{"raptors", "toronto raptors", "toronto"}},
		{Key: "thunder", Aliases: []string{"thunder", "oklahoma city thunder", "oklahoma city", "okc"}},
		{Key: "timberwolves", Aliases: []string{"timberwolves", "minnesota timberwolves", "minnesota", "wolves"}},
		{Key: "trail blazers", Aliases: []string{"trail blazers", "portland trail blazers", "portland", "blazers"}},
		{Key: "wizards", Aliases: []string{"wizards", "washington wizards", "washington"}},
		{Key: "hornets", Aliases: []string{"hornets", "charlotte hornets", "charlotte"}},

		// EuroLeague
		{Key: "real madrid", Aliases: []string{"real madrid", "real madrid baloncesto", "madrid basketball"}},
		{Key: "barcelona", Aliases: []string{"barcelona", "fc barcelona", "barça basketball", "barça basket", "fcb basketball"}},
		{Key: "olympiacos", Aliases: []string{"olympiacos", "olympiacos piraeus", "oly", "olympiacos bc"}},
		{Key: "panathinaikos", Aliases: []string{"panathinaikos", "panathinaikos aktor", "pao", "panathinaikos bc"}},
		{Key: "fenerbahce", Aliases: []string{"fenerbahce", "fenerbahçe", "fenerbahce beko", "fenerbahçe beko"}},
		{Key: "cska moscow", Aliases: []string{"cska moscow", "cska", "cska moskva"}},
		{Key: "anadolu efes", Aliases: []string{"anadolu efes", "efes", "efes pilsen"}},
		{Key: "monaco", Aliases: []string{"monaco", "as monaco", "as monaco basket"}},
		{Key: "baskonia", Aliases: []string{"baskonia", "td systems baskonia", "saski baskonia"}},
		{Key: "milano", Aliases: []string{"milano", "olimpia milano", "emporio armani milano", "armani milano", "olimpia milan"}},
		{Key: "zalgiris", Aliases: []string{"zalgiris", "zalgiris kaunas"}},
		{Key: "alba berlin", Aliases: []string{"alba berlin", "alba", "berlin"}},
		{Key: "asvel", Aliases: []string{"asvel", "ldlc asvel", "ldlc asvel villeurbanne", "villeurbanne"}},
	}
}

// clubPrefixes are stripped from names that match no alias.
var clubPrefixes = []string{"fc ", "cf ", "afc ", "f.c. ", "ac ", "cd ", "sc ", "rcd ", "rc ", "ud ", "as "}

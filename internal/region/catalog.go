package region

// KoreanRegions is the bundled catalog of South Korean first-level divisions.
var KoreanRegions = []Region{
	{ID: "seoul", Name: "Seoul", FullName: "Seoul, South Korea", Level: LevelProvince, Coordinates: Coordinates{Lat: 37.5665, Lon: 126.9780}},
	{ID: "busan", Name: "Busan", FullName: "Busan, South Korea", Level: LevelProvince, Coordinates: Coordinates{Lat: 35.1796, Lon: 129.0756}},
	{ID: "incheon", Name: "Incheon", FullName: "Incheon, South Korea", Level: LevelProvince, Coordinates: Coordinates{Lat: 37.4563, Lon: 126.7052}},
	{ID: "daegu", Name: "Daegu", FullName: "Daegu, South Korea", Level: LevelProvince, Coordinates: Coordinates{Lat: 35.8714, Lon: 128.6014}},
	{ID: "daejeon", Name: "Daejeon", FullName: "Daejeon, South Korea", Level: LevelProvince, Coordinates: Coordinates{Lat: 36.3504, Lon: 127.3845}},
	{ID: "gwangju", Name: "Gwangju", FullName: "Gwangju, South Korea", Level: LevelProvince, Coordinates: Coordinates{Lat: 35.1595, Lon: 126.8526}},
	{ID: "ulsan", Name: "Ulsan", FullName: "Ulsan, South Korea", Level: LevelProvince, Coordinates: Coordinates{Lat: 35.5384, Lon: 129.3114}},
	{ID: "sejong", Name: "Sejong", FullName: "Sejong, South Korea", Level: LevelProvince, Coordinates: Coordinates{Lat: 36.4800, Lon: 127.2890}},
	{ID: "gyeonggi", Name: "Gyeonggi", FullName: "Gyeonggi-do, South Korea", Level: LevelProvince, Coordinates: Coordinates{Lat: 37.4138, Lon: 127.5183}},
	{ID: "gangwon", Name: "Gangwon", FullName: "Gangwon Special Self-Governing Province, South Korea", Level: LevelProvince, Coordinates: Coordinates{Lat: 37.8228, Lon: 128.1555}},
	{ID: "chungbuk", Name: "Chungbuk", FullName: "Chungcheongbuk-do, South Korea", Level: LevelProvince, Coordinates: Coordinates{Lat: 36.6357, Lon: 127.4912}},
	{ID: "chungnam", Name: "Chungnam", FullName: "Chungcheongnam-do, South Korea", Level: LevelProvince, Coordinates: Coordinates{Lat: 36.6588, Lon: 126.6728}},
	{ID: "jeonbuk", Name: "Jeonbuk", FullName: "Jeollabuk-do, South Korea", Level: LevelProvince, Coordinates: Coordinates{Lat: 35.8202, Lon: 127.1089}},
	{ID: "jeonnam", Name: "Jeonnam", FullName: "Jeollanam-do, South Korea", Level: LevelProvince, Coordinates: Coordinates{Lat: 34.8679, Lon: 126.9910}},
	{ID: "gyeongbuk", Name: "Gyeongbuk", FullName: "Gyeongsangbuk-do, South Korea", Level: LevelProvince, Coordinates: Coordinates{Lat: 36.4919, Lon: 128.8889}},
	{ID: "gyeongnam", Name: "Gyeongnam", FullName: "Gyeongsangnam-do, South Korea", Level: LevelProvince, Coordinates: Coordinates{Lat: 35.4606, Lon: 128.2132}},
	{ID: "jeju", Name: "Jeju", FullName: "Jeju Special Self-Governing Province, South Korea", Level: LevelProvince, Coordinates: Coordinates{Lat: 33.4996, Lon: 126.5312}},
}

// KoreanAliases maps region IDs to their Hangul labels.
var KoreanAliases = map[string][]string{
	"seoul":     {"서울"},
	"busan":     {"부산"},
	"incheon":   {"인천"},
	"daegu":     {"대구"},
	"daejeon":   {"대전"},
	"gwangju":   {"광주"},
	"ulsan":     {"울산"},
	"sejong":    {"세종"},
	"gyeonggi":  {"경기", "경기도"},
	"gangwon":   {"강원"},
	"chungbuk":  {"충북"},
	"chungnam":  {"충남"},
	"jeonbuk":   {"전북"},
	"jeonnam":   {"전남"},
	"gyeongbuk": {"경북"},
	"gyeongnam": {"경남"},
	"jeju":      {"제주"},
}

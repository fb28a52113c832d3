package recordgen

// German locale tables.
var (
	deFirstNames = []string{
		"Lukas", "Leon", "Finn", "Jonas", "Paul", "Felix", "Maximilian", "Elias",
		"Ben", "Noah", "Luis", "Tim", "Jan", "Niklas", "Moritz", "Tobias",
		"Sebastian", "Florian", "Matthias", "Stefan", "Andreas", "Thomas", "Jürgen", "Uwe",
		"Emma", "Mia", "Hannah", "Lea", "Sophie", "Lena", "Marie", "Anna",
		"Laura", "Lisa", "Katharina", "Julia", "Sabine", "Petra", "Monika", "Ursula",
		"Claudia", "Susanne", "Birgit", "Heike", "Greta", "Frieda", "Ida", "Johanna",
	}

	deLastNames = []string{
		"Müller", "Schmidt", "Schneider", "Fischer", "Weber", "Meyer", "Wagner", "Becker",
		"Schulz", "Hoffmann", "Schäfer", "Koch", "Bauer", "Richter", "Klein", "Wolf",
		"Schröder", "Neumann", "Schwarz", "Zimmermann", "Braun", "Krüger", "Hofmann", "Hartmann",
		"Lange", "Schmitt", "Werner", "Schmitz", "Krause", "Meier", "Lehmann", "Schmid",
		"Schulze", "Maier", "Köhler", "Herrmann", "König", "Walter", "Mayer", "Huber",
	}

	deCities = []string{
		"Berlin", "Hamburg", "München", "Köln", "Frankfurt am Main", "Stuttgart",
		"Düsseldorf", "Leipzig", "Dortmund", "Essen", "Bremen", "Dresden",
		"Hannover", "Nürnberg", "Duisburg", "Bochum", "Wuppertal", "Bielefeld",
		"Bonn", "Münster", "Mannheim", "Karlsruhe", "Augsburg", "Wiesbaden",
		"Freiburg im Breisgau", "Heidelberg", "Regensburg", "Rostock", "Kiel", "Lübeck",
	}

	deStreetRoots = []string{
		"Haupt", "Bahnhof", "Schul", "Garten", "Dorf", "Berg", "Kirch", "Wald",
		"Ring", "Wiesen", "Linden", "Birken", "Eichen", "Mühlen", "Feld", "Brunnen",
		"Goethe", "Schiller", "Mozart", "Beethoven", "Friedrich", "Rosen", "Tannen", "Sonnen",
	}

	deStreetSuffixes = []string{"straße", "weg", "allee", "gasse", "platz", "ring"}

	dePlaceNames = []string{
		"Am Markt", "Am Hang", "Am Sportplatz", "An der Kirche", "Im Winkel",
		"Zum Hafen", "Auf dem Berg", "In den Gärten", "Hinter der Mühle", "Am Stadtpark",
	}

	deAreaCodes = []string{"30", "40", "89", "221", "69", "711", "211", "341", "351", "511", "911", "228"}
)

// Polish locale tables.
var (
	plMaleFirstNames = []string{
		"Jakub", "Jan", "Szymon", "Antoni", "Filip", "Kacper", "Piotr", "Krzysztof",
		"Andrzej", "Tomasz", "Paweł", "Michał", "Marcin", "Marek", "Łukasz", "Grzegorz",
		"Mateusz", "Adam", "Wojciech", "Dariusz",
	}

	plFemaleFirstNames = []string{
		"Anna", "Maria", "Katarzyna", "Małgorzata", "Agnieszka", "Barbara", "Ewa", "Krystyna",
		"Magdalena", "Elżbieta", "Joanna", "Aleksandra", "Monika", "Zofia", "Julia", "Zuzanna",
		"Natalia", "Wiktoria", "Beata", "Dorota",
	}

	// plLastNames holds masculine/feminine surname pairs.
	plLastNames = [][2]string{
		{"Nowak", "Nowak"}, {"Kowalski", "Kowalska"}, {"Wiśniewski", "Wiśniewska"},
		{"Wójcik", "Wójcik"}, {"Kowalczyk", "Kowalczyk"}, {"Kamiński", "Kamińska"},
		{"Lewandowski", "Lewandowska"}, {"Zieliński", "Zielińska"}, {"Szymański", "Szymańska"},
		{"Woźniak", "Woźniak"}, {"Dąbrowski", "Dąbrowska"}, {"Kozłowski", "Kozłowska"},
		{"Jankowski", "Jankowska"}, {"Mazur", "Mazur"}, {"Kwiatkowski", "Kwiatkowska"},
		{"Krawczyk", "Krawczyk"}, {"Piotrowski", "Piotrowska"}, {"Grabowski", "Grabowska"},
		{"Nowakowski", "Nowakowska"}, {"Pawłowski", "Pawłowska"}, {"Michalski", "Michalska"},
		{"Król", "Król"}, {"Wieczorek", "Wieczorek"}, {"Jabłoński", "Jabłońska"},
	}

	plCities = []string{
		"Warszawa", "Kraków", "Łódź", "Wrocław", "Poznań", "Gdańsk", "Szczecin",
		"Bydgoszcz", "Lublin", "Białystok", "Katowice", "Gdynia", "Częstochowa",
		"Radom", "Toruń", "Sosnowiec", "Rzeszów", "Kielce", "Gliwice", "Olsztyn",
		"Opole", "Zielona Góra", "Płock", "Elbląg", "Tarnów",
	}

	plStreets = []string{
		"Polna", "Leśna", "Słoneczna", "Krótka", "Szkolna", "Ogrodowa", "Lipowa",
		"Brzozowa", "Łąkowa", "Kwiatowa", "Kościuszki", "Mickiewicza", "Sienkiewicza",
		"Kolejowa", "Długa", "Parkowa", "Zielona", "Jana Pawła II", "Piłsudskiego",
		"Kopernika", "Wiejska", "Ogrodowa", "Słowackiego", "Żeromskiego", "Chopina",
	}

	plMobilePrefixes = []string{"50", "51", "53", "57", "60", "66", "69", "72", "73", "78", "79", "88"}
)

// Belarusian locale tables (Cyrillic).
var (
	byMaleFirstNames = []string{
		"Александр", "Дмитрий", "Сергей", "Андрей", "Алексей", "Максим", "Иван", "Михаил",
		"Николай", "Владимир", "Павел", "Евгений", "Артём", "Виктор", "Кирилл", "Денис",
		"Игорь", "Юрий", "Олег", "Антон",
	}

	byFemaleFirstNames = []string{
		"Анна", "Мария", "Елена", "Ольга", "Татьяна", "Наталья", "Ирина", "Светлана",
		"Екатерина", "Юлия", "Анастасия", "Дарья", "Алина", "Виктория", "Полина", "Ксения",
		"Людмила", "Валентина", "Марина", "Вероника",
	}

	// byLastNames holds masculine/feminine surname pairs.
	byLastNames = [][2]string{
		{"Иванов", "Иванова"}, {"Ковалёв", "Ковалёва"}, {"Новик", "Новик"},
		{"Козлов", "Козлова"}, {"Мельник", "Мельник"}, {"Шевчук", "Шевчук"},
		{"Кравченко", "Кравченко"}, {"Лукашевич", "Лукашевич"}, {"Романович", "Романович"},
		{"Климович", "Климович"}, {"Жук", "Жук"}, {"Бондаренко", "Бондаренко"},
		{"Ковальчук", "Ковальчук"}, {"Савицкий", "Савицкая"}, {"Василевский", "Василевская"},
		{"Петров", "Петрова"}, {"Соколов", "Соколова"}, {"Макаревич", "Макаревич"},
		{"Сидоренко", "Сидоренко"}, {"Захаров", "Захарова"}, {"Морозов", "Морозова"},
	}

	byCities = []string{
		"Минск", "Гомель", "Могилёв", "Витебск", "Гродно", "Брест", "Бобруйск",
		"Барановичи", "Борисов", "Пинск", "Орша", "Мозырь", "Солигорск", "Новополоцк",
		"Лида", "Молодечно", "Полоцк", "Жлобин", "Светлогорск", "Речица",
	}

	byVillages = []string{
		"Тарасово", "Колодищи", "Ждановичи", "Боровляны", "Лесной", "Острошицкий Городок",
		"Сеница", "Михановичи", "Крупица", "Новосёлки", "Гатово", "Озерцо",
		"Луговая Слобода", "Копище", "Хатежино",
	}

	byOblasts = []string{
		"Минская", "Гомельская", "Могилёвская", "Витебская", "Гродненская", "Брестская",
	}

	byStreets = []string{
		"Ленина", "Советская", "Независимости", "Победителей", "Якуба Коласа", "Янки Купалы",
		"Гагарина", "Пушкина", "Максима Богдановича", "Кирова", "Московская", "Садовая",
		"Октябрьская", "Пролетарская", "Франциска Скорины", "Мира", "Центральная", "Лесная",
		"Молодёжная", "Школьная",
	}

	byOperatorCodes = []string{"25", "29", "33", "44"}
)

package catalog

import "timeline/models"

// Event is a catalog item. CorrectRange is the answer bucket index and is
// never sent to clients while a round is open.
type Event struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Category     models.Category `json:"category"`
	CorrectRange int             `json:"correctRange"`
	Choices      []string        `json:"choices,omitempty"`
}

var globalEvents = []Event{
	// HISTORY
	{ID: "hist-001", Title: "Construction of the Great Pyramid of Giza", Description: "The largest of the Egyptian pyramids was built as a tomb for Pharaoh Khufu", Category: models.CategoryHistory, CorrectRange: 0},
	{ID: "hist-002", Title: "Fall of the Roman Empire", Description: "The Western Roman Empire officially came to an end", Category: models.CategoryHistory, CorrectRange: 1},
	{ID: "hist-003", Title: "Viking Age Begins", Description: "Norse seafarers began their expansion across Europe", Category: models.CategoryHistory, CorrectRange: 2},
	{ID: "hist-004", Title: "The Crusades Begin", Description: "Pope Urban II called for the First Crusade at the Council of Clermont", Category: models.CategoryHistory, CorrectRange: 3},
	{ID: "hist-005", Title: "Columbus Reaches the Americas", Description: "Christopher Columbus made his first voyage across the Atlantic Ocean", Category: models.CategoryHistory, CorrectRange: 4},
	{ID: "hist-006", Title: "French Revolution", Description: "The storming of the Bastille marked the beginning of the French Revolution", Category: models.CategoryHistory, CorrectRange: 5},
	{ID: "hist-007", Title: "American Civil War", Description: "The conflict between the Union and the Confederacy tore America apart", Category: models.CategoryHistory, CorrectRange: 6},
	{ID: "hist-008", Title: "World War I", Description: "The Great War began, eventually involving most of the world's great powers", Category: models.CategoryHistory, CorrectRange: 7},
	{ID: "hist-009", Title: "Berlin Wall Falls", Description: "The wall dividing East and West Berlin was torn down", Category: models.CategoryHistory, CorrectRange: 8},
	{ID: "hist-010", Title: "9/11 Attacks", Description: "Terrorist attacks on the World Trade Center changed the world", Category: models.CategoryHistory, CorrectRange: 9},

	// SCI_TECH
	{ID: "tech-001", Title: "Invention of the Wheel", Description: "One of humanity's most important inventions revolutionized transportation", Category: models.CategorySciTech, CorrectRange: 0},
	{ID: "tech-002", Title: "Gutenberg Printing Press", Description: "Johannes Gutenberg invented the movable type printing press", Category: models.CategorySciTech, CorrectRange: 4},
	{ID: "tech-003", Title: "Newton's Principia Published", Description: "Isaac Newton published his laws of motion and universal gravitation", Category: models.CategorySciTech, CorrectRange: 5},
	{ID: "tech-004", Title: "Telephone Invented", Description: "Alexander Graham Bell patented the telephone", Category: models.CategorySciTech, CorrectRange: 6},
	{ID: "tech-005", Title: "First Airplane Flight", Description: "The Wright Brothers achieved the first powered flight at Kitty Hawk", Category: models.CategorySciTech, CorrectRange: 7},
	{ID: "tech-006", Title: "Moon Landing", Description: "Neil Armstrong became the first human to walk on the Moon", Category: models.CategorySciTech, CorrectRange: 8},
	{ID: "tech-007", Title: "World Wide Web Created", Description: "Tim Berners-Lee invented the World Wide Web", Category: models.CategorySciTech, CorrectRange: 8},
	{ID: "tech-008", Title: "iPhone Released", Description: "Apple released the first iPhone, revolutionizing smartphones", Category: models.CategorySciTech, CorrectRange: 9},

	// CULTURE
	{ID: "cult-001", Title: "Mona Lisa Painted", Description: "Leonardo da Vinci created his famous masterpiece", Category: models.CategoryCulture, CorrectRange: 4},
	{ID: "cult-002", Title: "Shakespeare's Hamlet", Description: "William Shakespeare wrote one of his most famous tragedies", Category: models.CategoryCulture, CorrectRange: 4},
	{ID: "cult-003", Title: "Beethoven's 9th Symphony", Description: "Ludwig van Beethoven premiered his final complete symphony", Category: models.CategoryCulture, CorrectRange: 6},
	{ID: "cult-004", Title: "First Motion Picture", Description: "The Lumiere Brothers held the first public film screening", Category: models.CategoryCulture, CorrectRange: 6},
	{ID: "cult-005", Title: "Jazz Age Begins", Description: "Jazz music exploded in popularity during the Roaring Twenties", Category: models.CategoryCulture, CorrectRange: 7},
	{ID: "cult-006", Title: "Beatles' British Invasion", Description: "The Beatles appeared on The Ed Sullivan Show, taking America by storm", Category: models.CategoryCulture, CorrectRange: 8},
	{ID: "cult-007", Title: "Harry Potter Published", Description: "J.K. Rowling's first Harry Potter book hit the shelves", Category: models.CategoryCulture, CorrectRange: 8},
	{ID: "cult-008", Title: "Streaming Takes Over", Description: "Music and film consumption moved to on-demand streaming platforms", Category: models.CategoryCulture, CorrectRange: 9},

	// TRAVEL
	{ID: "trav-001", Title: "Silk Road Flourishes", Description: "The trade route connecting East and West reached its peak", Category: models.CategoryTravel, CorrectRange: 1},
	{ID: "trav-002", Title: "Marco Polo's Journey", Description: "The Venetian merchant traveled the length of Asia", Category: models.CategoryTravel, CorrectRange: 3},
	{ID: "trav-003", Title: "Magellan Circumnavigates the Globe", Description: "The first expedition to sail around the entire world", Category: models.CategoryTravel, CorrectRange: 4},
	{ID: "trav-004", Title: "First Transcontinental Railroad", Description: "The railroad linking the American east and west coasts was completed", Category: models.CategoryTravel, CorrectRange: 6},
	{ID: "trav-005", Title: "First Commercial Jet Flight", Description: "The de Havilland Comet opened the jet age of passenger travel", Category: models.CategoryTravel, CorrectRange: 8},
	{ID: "trav-006", Title: "International Space Station Launched", Description: "The first module of the ISS was launched into orbit", Category: models.CategoryTravel, CorrectRange: 8},
	{ID: "trav-007", Title: "SpaceX Crew Dragon", Description: "The first private spacecraft to carry astronauts to the ISS", Category: models.CategoryTravel, CorrectRange: 9},
}

var thailandEvents = []Event{
	{ID: "thai-001", Title: "Founding of Sukhothai Kingdom", Description: "The first major Thai kingdom was established", Category: models.CategoryHistory, CorrectRange: 3},
	{ID: "thai-002", Title: "Ayutthaya Becomes Capital", Description: "The kingdom of Ayutthaya rose as a major trading power", Category: models.CategoryHistory, CorrectRange: 3},
	{ID: "thai-003", Title: "Fall of Ayutthaya", Description: "The Burmese army sacked the Siamese capital", Category: models.CategoryHistory, CorrectRange: 5},
	{ID: "thai-004", Title: "Founding of Bangkok", Description: "King Rama I established the new capital on the Chao Phraya river", Category: models.CategoryHistory, CorrectRange: 5},
	{ID: "thai-005", Title: "Wat Arun Completed", Description: "The Temple of Dawn received its iconic central prang", Category: models.CategoryLandmarks, CorrectRange: 6},
	{ID: "thai-006", Title: "Siam Becomes Thailand", Description: "The country officially changed its name to Thailand", Category: models.CategoryHistory, CorrectRange: 7},
	{ID: "thai-007", Title: "Thai Constitution Adopted", Description: "Siam transitioned from absolute to constitutional monarchy", Category: models.CategoryHistory, CorrectRange: 7},
	{ID: "thai-008", Title: "BTS Skytrain Opens", Description: "Bangkok's elevated rapid transit system began service", Category: models.CategoryCulture, CorrectRange: 8},
	{ID: "thai-009", Title: "Songkran Goes Global", Description: "The Thai new year water festival became a worldwide attraction", Category: models.CategoryCulture, CorrectRange: 9},
}

var scienceEvents = []Event{
	{ID: "sci-001", Title: "Archimedes' Principle", Description: "The Greek mathematician discovered the law of buoyancy", Category: models.CategorySciTech, CorrectRange: 1},
	{ID: "sci-002", Title: "Copernican Heliocentrism", Description: "Copernicus published his model placing the Sun at the center", Category: models.CategoryDiscoveries, CorrectRange: 4},
	{ID: "sci-003", Title: "Galileo's Telescope Observations", Description: "Galileo observed the moons of Jupiter", Category: models.CategoryDiscoveries, CorrectRange: 4},
	{ID: "sci-004", Title: "Smallpox Vaccine", Description: "Edward Jenner demonstrated the first successful vaccine", Category: models.CategoryDiscoveries, CorrectRange: 5},
	{ID: "sci-005", Title: "Darwin's Origin of Species", Description: "Charles Darwin published his theory of evolution by natural selection", Category: models.CategoryDiscoveries, CorrectRange: 6},
	{ID: "sci-006", Title: "Discovery of Penicillin", Description: "Alexander Fleming discovered the first true antibiotic", Category: models.CategoryDiscoveries, CorrectRange: 7},
	{ID: "sci-007", Title: "DNA Double Helix", Description: "Watson and Crick described the structure of DNA", Category: models.CategoryDiscoveries, CorrectRange: 8},
	{ID: "sci-008", Title: "First Exoplanet Confirmed", Description: "Astronomers confirmed a planet orbiting a Sun-like star", Category: models.CategoryDiscoveries, CorrectRange: 8},
	{ID: "sci-009", Title: "Higgs Boson Observed", Description: "CERN announced the discovery of the Higgs particle", Category: models.CategoryDiscoveries, CorrectRange: 9},
	{ID: "sci-010", Title: "First Image of a Black Hole", Description: "The Event Horizon Telescope captured the M87 black hole", Category: models.CategoryDiscoveries, CorrectRange: 9},
}

var movieEvents = []Event{
	{ID: "mov-001", Title: "Gone with the Wind", Description: "The sweeping Civil War epic dominated the box office", Category: models.CategoryMovies, CorrectRange: models.MovieRangeIndex(1939)},
	{ID: "mov-002", Title: "Casablanca", Description: "Rick and Ilsa's wartime romance became an instant classic", Category: models.CategoryMovies, CorrectRange: models.MovieRangeIndex(1942)},
	{ID: "mov-003", Title: "Singin' in the Rain", Description: "The definitive Hollywood musical about the end of the silent era", Category: models.CategoryMovies, CorrectRange: models.MovieRangeIndex(1952)},
	{ID: "mov-004", Title: "Psycho", Description: "Hitchcock's shower scene changed horror forever", Category: models.CategoryMovies, CorrectRange: models.MovieRangeIndex(1960)},
	{ID: "mov-005", Title: "The Godfather", Description: "Coppola's mafia saga redefined the crime film", Category: models.CategoryMovies, CorrectRange: models.MovieRangeIndex(1972)},
	{ID: "mov-006", Title: "Star Wars", Description: "A galaxy far, far away launched the modern blockbuster", Category: models.CategoryMovies, CorrectRange: models.MovieRangeIndex(1977)},
	{ID: "mov-007", Title: "Back to the Future", Description: "A DeLorean, a teenager, and 1.21 gigawatts", Category: models.CategoryMovies, CorrectRange: models.MovieRangeIndex(1985)},
	{ID: "mov-008", Title: "Jurassic Park", Description: "Spielberg brought dinosaurs back to life with groundbreaking effects", Category: models.CategoryMovies, CorrectRange: models.MovieRangeIndex(1993)},
	{ID: "mov-009", Title: "The Lord of the Rings: The Return of the King", Description: "The trilogy's finale swept the Academy Awards", Category: models.CategoryMovies, CorrectRange: models.MovieRangeIndex(2003)},
	{ID: "mov-010", Title: "Avengers: Endgame", Description: "The Marvel saga's climax broke box office records", Category: models.CategoryMovies, CorrectRange: models.MovieRangeIndex(2019)},
}

var movieGuessEvents = []Event{
	{ID: "mguess-001", Title: "The Matrix", Description: "A hacker discovers reality is a simulation and takes a red pill", Category: models.CategoryMovies, CorrectRange: 2, Choices: []string{"Inception", "Blade Runner", "The Matrix", "Minority Report"}},
	{ID: "mguess-002", Title: "Titanic", Description: "A forbidden romance unfolds aboard a doomed ocean liner", Category: models.CategoryMovies, CorrectRange: 0, Choices: []string{"Titanic", "The Notebook", "Pearl Harbor", "Atonement"}},
	{ID: "mguess-003", Title: "Jaws", Description: "A seaside town is terrorized by a great white shark", Category: models.CategoryMovies, CorrectRange: 1, Choices: []string{"The Meg", "Jaws", "Deep Blue Sea", "Open Water"}},
	{ID: "mguess-004", Title: "Spirited Away", Description: "A girl must work in a bathhouse for spirits to free her parents", Category: models.CategoryMovies, CorrectRange: 3, Choices: []string{"Ponyo", "My Neighbor Totoro", "Howl's Moving Castle", "Spirited Away"}},
	{ID: "mguess-005", Title: "The Shining", Description: "A winter caretaker slowly loses his mind in an empty hotel", Category: models.CategoryMovies, CorrectRange: 1, Choices: []string{"Misery", "The Shining", "1408", "Doctor Sleep"}},
	{ID: "mguess-006", Title: "Forrest Gump", Description: "A slow-witted but kind man stumbles through decades of history", Category: models.CategoryMovies, CorrectRange: 2, Choices: []string{"Big", "Rain Man", "Forrest Gump", "The Terminal"}},
	{ID: "mguess-007", Title: "Parasite", Description: "A poor family infiltrates a wealthy household one job at a time", Category: models.CategoryMovies, CorrectRange: 0, Choices: []string{"Parasite", "Shoplifters", "Burning", "Oldboy"}},
	{ID: "mguess-008", Title: "E.T. the Extra-Terrestrial", Description: "A boy helps a stranded alien phone home", Category: models.CategoryMovies, CorrectRange: 3, Choices: []string{"Close Encounters", "Flight of the Navigator", "Explorers", "E.T. the Extra-Terrestrial"}},
}

var modeEvents = map[models.GameMode][]Event{
	models.ModeGlobal:     globalEvents,
	models.ModeThailand:   thailandEvents,
	models.ModeScience:    scienceEvents,
	models.ModeMovies:     movieEvents,
	models.ModeMovieGuess: movieGuessEvents,
}

var eventsByID = func() map[string]Event {
	m := make(map[string]Event)
	for _, events := range modeEvents {
		for _, e := range events {
			m[e.ID] = e
		}
	}
	return m
}()

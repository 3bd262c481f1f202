package game

import "fmt"

// Place is the dense index of a real location on the board.
type Place int

// PlaceType classifies a place as land or sea.
type PlaceType int

const (
	Land PlaceType = iota
	Sea
)

// Nowhere marks an undefined location, e.g. a player who has not moved yet.
const Nowhere Place = -1

// NumRealPlaces is the number of real locations on the board.
const NumRealPlaces = 71

const (
	AdriaticSea Place = iota
	Alicante
	Amsterdam
	Athens
	AtlanticOcean
	Barcelona
	Bari
	BayOfBiscay
	Belgrade
	Berlin
	BlackSea
	Bordeaux
	Brussels
	Bucharest
	Budapest
	Cadiz
	Cagliari
	CastleDracula
	ClermontFerrand
	Cologne
	Constanta
	Dublin
	Edinburgh
	EnglishChannel
	Florence
	Frankfurt
	Galatz
	Galway
	Geneva
	Genoa
	Granada
	Hamburg
	IonianSea
	IrishSea
	Klausenburg
	LeHavre
	Leipzig
	Lisbon
	Liverpool
	London
	Madrid
	Manchester
	Marseilles
	MediterraneanSea
	Milan
	Munich
	Nantes
	Naples
	NorthSea
	Nuremburg
	Paris
	Plymouth
	Prague
	Rome
	Salonica
	Santander
	Saragossa
	Sarajevo
	Sofia
	StJosephAndStMary
	Strasbourg
	Swansea
	Szeged
	Toulouse
	TyrrhenianSea
	Valona
	Varna
	Venice
	Vienna
	Zagreb
	Zurich
)

// Hospital is where hunters are sent when their life points run out.
const Hospital = StJosephAndStMary

type placeInfo struct {
	name   string
	abbrev string
	kind   PlaceType
}

var places = [NumRealPlaces]placeInfo{
	{"Adriatic Sea", "AS", Sea},
	{"Alicante", "AL", Land},
	{"Amsterdam", "AM", Land},
	{"Athens", "AT", Land},
	{"Atlantic Ocean", "AO", Sea},
	{"Barcelona", "BA", Land},
	{"Bari", "BI", Land},
	{"Bay of Biscay", "BB", Sea},
	{"Belgrade", "BE", Land},
	{"Berlin", "BR", Land},
	{"Black Sea", "BS", Sea},
	{"Bordeaux", "BO", Land},
	{"Brussels", "BU", Land},
	{"Bucharest", "BC", Land},
	{"Budapest", "BD", Land},
	{"Cadiz", "CA", Land},
	{"Cagliari", "CG", Land},
	{"Castle Dracula", "CD", Land},
	{"Clermont-Ferrand", "CF", Land},
	{"Cologne", "CO", Land},
	{"Constanta", "CN", Land},
	{"Dublin", "DU", Land},
	{"Edinburgh", "ED", Land},
	{"English Channel", "EC", Sea},
	{"Florence", "FL", Land},
	{"Frankfurt", "FR", Land},
	{"Galatz", "GA", Land},
	{"Galway", "GW", Land},
	{"Geneva", "GE", Land},
	{"Genoa", "GO", Land},
	{"Granada", "GR", Land},
	{"Hamburg", "HA", Land},
	{"Ionian Sea", "IO", Sea},
	{"Irish Sea", "IR", Sea},
	{"Klausenburg", "KL", Land},
	{"Le Havre", "LE", Land},
	{"Leipzig", "LI", Land},
	{"Lisbon", "LS", Land},
	{"Liverpool", "LV", Land},
	{"London", "LO", Land},
	{"Madrid", "MA", Land},
	{"Manchester", "MN", Land},
	{"Marseilles", "MR", Land},
	{"Mediterranean Sea", "MS", Sea},
	{"Milan", "MI", Land},
	{"Munich", "MU", Land},
	{"Nantes", "NA", Land},
	{"Naples", "NP", Land},
	{"North Sea", "NS", Sea},
	{"Nuremburg", "NU", Land},
	{"Paris", "PA", Land},
	{"Plymouth", "PL", Land},
	{"Prague", "PR", Land},
	{"Rome", "RO", Land},
	{"Salonica", "SA", Land},
	{"Santander", "SN", Land},
	{"Saragossa", "SR", Land},
	{"Sarajevo", "SJ", Land},
	{"Sofia", "SO", Land},
	{"St Joseph and St Mary", "JM", Land},
	{"Strasbourg", "ST", Land},
	{"Swansea", "SW", Land},
	{"Szeged", "SZ", Land},
	{"Toulouse", "TO", Land},
	{"Tyrrhenian Sea", "TS", Sea},
	{"Valona", "VA", Land},
	{"Varna", "VR", Land},
	{"Venice", "VE", Land},
	{"Vienna", "VI", Land},
	{"Zagreb", "ZA", Land},
	{"Zurich", "ZU", Land},
}

var placeIDMap = func() map[string]Place {
	m := make(map[string]Place, NumRealPlaces)
	for id, info := range places {
		m[info.abbrev] = Place(id)
	}
	return m
}()

// PlaceFromAbbrev looks up a real place by its two-letter abbreviation.
func PlaceFromAbbrev(abbrev string) (Place, bool) {
	p, ok := placeIDMap[abbrev]
	return p, ok
}

// IsReal reports whether p denotes a location on the board.
func (p Place) IsReal() bool {
	return p >= 0 && p < NumRealPlaces
}

// IsSea reports whether p is a sea. Nowhere is not a sea.
func (p Place) IsSea() bool {
	return p.IsReal() && places[p].kind == Sea
}

func (p Place) Type() PlaceType {
	if !p.IsReal() {
		return Land
	}
	return places[p].kind
}

func (p Place) Name() string {
	if !p.IsReal() {
		return "Nowhere"
	}
	return places[p].name
}

func (p Place) Abbrev() string {
	if !p.IsReal() {
		return "NW"
	}
	return places[p].abbrev
}

func (p Place) String() string {
	if !p.IsReal() && p != Nowhere {
		return fmt.Sprintf("Place(%d)", int(p))
	}
	return p.Abbrev()
}

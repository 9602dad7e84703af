package park

// BuildingType identifies a placeable structure.
type BuildingType uint8

const (
	BuildingNone BuildingType = iota
	BuildingFoodStand
	BuildingBurgerShack
	BuildingPizzaPlace
	BuildingDrinkStall
	BuildingIceCream
	BuildingGiftShop
	BuildingBalloonStand
	BuildingSouvenirHut
	BuildingCarousel
	BuildingFerrisWheel
	BuildingHauntedHouse
	BuildingBumperCars
	BuildingRestroom
	BuildingInfoKiosk
	BuildingFountain
	BuildingTopiary
	BuildingLampPost
)

// BuildingKind classifies structures for guest decisions and fees.
type BuildingKind uint8

const (
	KindNone BuildingKind = iota
	KindFood
	KindShop
	KindRide
	KindInfrastructure
	KindScenery
)

type buildingInfo struct {
	name string
	kind BuildingKind
	cost float64
}

var buildingTable = map[BuildingType]buildingInfo{
	BuildingFoodStand:    {"food_stand", KindFood, 250},
	BuildingBurgerShack:  {"burger_shack", KindFood, 400},
	BuildingPizzaPlace:   {"pizza_place", KindFood, 450},
	BuildingDrinkStall:   {"drink_stall", KindFood, 200},
	BuildingIceCream:     {"ice_cream", KindFood, 300},
	BuildingGiftShop:     {"gift_shop", KindShop, 500},
	BuildingBalloonStand: {"balloon_stand", KindShop, 150},
	BuildingSouvenirHut:  {"souvenir_hut", KindShop, 350},
	BuildingCarousel:     {"carousel", KindRide, 1200},
	BuildingFerrisWheel:  {"ferris_wheel", KindRide, 2500},
	BuildingHauntedHouse: {"haunted_house", KindRide, 1800},
	BuildingBumperCars:   {"bumper_cars", KindRide, 1500},
	BuildingRestroom:     {"restroom", KindInfrastructure, 300},
	BuildingInfoKiosk:    {"info_kiosk", KindInfrastructure, 200},
	BuildingFountain:     {"fountain", KindScenery, 400},
	BuildingTopiary:      {"topiary", KindScenery, 100},
	BuildingLampPost:     {"lamp_post", KindScenery, 50},
}

func (b BuildingType) Kind() BuildingKind {
	return buildingTable[b].kind
}

func (b BuildingType) Cost() float64 {
	return buildingTable[b].cost
}

func (b BuildingType) String() string {
	if b == BuildingNone {
		return "none"
	}
	return buildingTable[b].name
}

func (b BuildingType) IsFood() bool { return b.Kind() == KindFood }
func (b BuildingType) IsShop() bool { return b.Kind() == KindShop }
func (b BuildingType) IsRide() bool { return b.Kind() == KindRide }

// BuildingTypeByName resolves a wire-format name, BuildingNone if unknown.
func BuildingTypeByName(name string) BuildingType {
	for bt, info := range buildingTable {
		if info.name == name {
			return bt
		}
	}
	return BuildingNone
}

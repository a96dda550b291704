package character

// Sheet is the printable view of a character.
type Sheet struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	Race       string `yaml:"race"`
	Gender     string `yaml:"gender"`
	Profession string `yaml:"profession"`
	Level      int    `yaml:"level"`
	Fate       string `yaml:"fate,omitempty"`

	Properties []SheetProperty `yaml:"properties"`
	Body       SheetBody       `yaml:"body"`
	Derived    SheetDerived    `yaml:"derived"`
}

// SheetProperty is one base property row.
type SheetProperty struct {
	Code      string `yaml:"code"`
	Label     string `yaml:"label"`
	Unlimited int    `yaml:"unlimited"`
	FirstLvl  int    `yaml:"first_level"`
	Loss      int    `yaml:"loss,omitempty"`
	NextLvls  int    `yaml:"next_levels"`
	Value     int    `yaml:"value"`
}

type SheetBody struct {
	WeightInKg float64 `yaml:"weight_kg"`
	HeightInCm float64 `yaml:"height_cm"`
	Height     int     `yaml:"height"`
	Size       int     `yaml:"size"`
	Age        int     `yaml:"age"`
}

type SheetDerived struct {
	Toughness              int `yaml:"toughness"`
	Endurance              int `yaml:"endurance"`
	Speed                  int `yaml:"speed"`
	Senses                 int `yaml:"senses"`
	Beauty                 int `yaml:"beauty"`
	Dangerousness          int `yaml:"dangerousness"`
	Dignity                int `yaml:"dignity"`
	FightNumber            int `yaml:"fight_number"`
	Attack                 int `yaml:"attack"`
	Shooting               int `yaml:"shooting"`
	DefenseNumber          int `yaml:"defense_number"`
	DefenseAgainstShooting int `yaml:"defense_against_shooting"`
	WoundBoundary          int `yaml:"wound_boundary"`
	FatigueBoundary        int `yaml:"fatigue_boundary"`
}

// NewSheet renders c.
//
// Precondition: c must be non-nil and built by Build.
func NewSheet(c *Character) Sheet {
	p := c.Properties
	breakdown := p.Breakdown()
	rows := make([]SheetProperty, 0, len(breakdown))
	for _, row := range breakdown {
		rows = append(rows, SheetProperty{
			Code:      string(row.Code),
			Label:     row.Code.Short(),
			Unlimited: row.Unlimited,
			FirstLvl:  row.FirstLevel,
			Loss:      row.Loss,
			NextLvls:  row.NextLevels,
			Value:     row.Final,
		})
	}

	return Sheet{
		ID:         c.ID.String(),
		Name:       c.Name,
		Race:       c.Race.String(),
		Gender:     string(c.Gender),
		Profession: string(c.Profession()),
		Level:      c.Level(),
		Fate:       c.Fate.String(),
		Properties: rows,
		Body: SheetBody{
			WeightInKg: float64(p.WeightInKg()),
			HeightInCm: float64(p.HeightInCm()),
			Height:     int(p.Height()),
			Size:       int(p.Size()),
			Age:        int(p.Age()),
		},
		Derived: SheetDerived{
			Toughness:              int(p.Toughness()),
			Endurance:              int(p.Endurance()),
			Speed:                  int(p.Speed()),
			Senses:                 int(p.Senses()),
			Beauty:                 int(p.Beauty()),
			Dangerousness:          int(p.Dangerousness()),
			Dignity:                int(p.Dignity()),
			FightNumber:            int(p.FightNumber()),
			Attack:                 int(p.Attack()),
			Shooting:               int(p.Shooting()),
			DefenseNumber:          int(p.DefenseNumber()),
			DefenseAgainstShooting: int(p.DefenseAgainstShooting()),
			WoundBoundary:          int(p.WoundBoundary()),
			FatigueBoundary:        int(p.FatigueBoundary()),
		},
	}
}

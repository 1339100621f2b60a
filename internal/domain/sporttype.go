package domain

// SportSubType is a variant of a sport type (e.g. "Road" for cycling)
type SportSubType struct {
	ID   int
	Name string
}

// GetID returns the subtype ID
func (s *SportSubType) GetID() int {
	return s.ID
}

// Clone returns a copy of the subtype
func (s *SportSubType) Clone() *SportSubType {
	c := *s
	return &c
}

// Equipment is a piece of gear used for a sport type (e.g. a pair of shoes)
type Equipment struct {
	ID       int
	Name     string
	NotInUse bool
}

// GetID returns the equipment ID
func (e *Equipment) GetID() int {
	return e.ID
}

// Clone returns a copy of the equipment
func (e *Equipment) Clone() *Equipment {
	c := *e
	return &c
}

// SportType owns its subtypes and equipment.
// Edits are applied to a Clone which then replaces the original by ID.
type SportType struct {
	ID             int
	Name           string
	Icon           string // icon name, e.g. "cycling"
	Color          string // hex color, e.g. "#1E88E5"
	RecordDistance bool
	SubTypes       *IdentityList[*SportSubType]
	Equipment      *IdentityList[*Equipment]
}

// NewSportType creates a sport type with empty subtype and equipment lists
func NewSportType(id int, name string) *SportType {
	return &SportType{
		ID:             id,
		Name:           name,
		RecordDistance: true,
		SubTypes:       NewIdentityList[*SportSubType](),
		Equipment:      NewIdentityList[*Equipment](),
	}
}

// GetID returns the sport type ID
func (s *SportType) GetID() int {
	return s.ID
}

// Clone deep-copies the sport type including its subtypes and equipment.
// Listeners registered on the child lists are not copied.
func (s *SportType) Clone() *SportType {
	c := *s
	c.SubTypes = s.subTypes().cloneWithoutListeners((*SportSubType).Clone)
	c.Equipment = s.equipment().cloneWithoutListeners((*Equipment).Clone)
	return &c
}

// SubTypeByID looks up one of the sport type's subtypes
func (s *SportType) SubTypeByID(id int) (*SportSubType, bool) {
	return s.subTypes().ByID(id)
}

// EquipmentByID looks up one of the sport type's equipment entries
func (s *SportType) EquipmentByID(id int) (*Equipment, bool) {
	return s.equipment().ByID(id)
}

// subTypes and equipment treat a nil list as empty without assigning one
func (s *SportType) subTypes() *IdentityList[*SportSubType] {
	if s.SubTypes == nil {
		return NewIdentityList[*SportSubType]()
	}
	return s.SubTypes
}

func (s *SportType) equipment() *IdentityList[*Equipment] {
	if s.Equipment == nil {
		return NewIdentityList[*Equipment]()
	}
	return s.Equipment
}

// FindEquipment returns the first equipment with the given ID in any sport
// type. Equipment IDs are only unique within their sport type.
func FindEquipment(sportTypes *SportTypeList, id int) (*Equipment, bool) {
	for _, st := range sportTypes.items {
		if eq, ok := st.EquipmentByID(id); ok {
			return eq, true
		}
	}
	return nil, false
}

// SportTypeList holds the sport-type graph
type SportTypeList = IdentityList[*SportType]

// NewSportTypeList creates an empty sport type list
func NewSportTypeList() *SportTypeList {
	return NewIdentityList[*SportType]()
}

package domain

import "time"

// Weight is a body weight measurement
type Weight struct {
	ID       int
	DateTime time.Time
	Value    float64 // kg
	Comment  string
}

func (w *Weight) GetID() int {
	return w.ID
}

func (w *Weight) GetDateTime() time.Time {
	return w.DateTime
}

func (w *Weight) GetComment() string {
	return w.Comment
}

// Clone copies the weight entry
func (w *Weight) Clone() *Weight {
	c := *w
	return &c
}

// WeightList is the collection of all weight entries
type WeightList struct {
	*EntryList[*Weight]
}

// NewWeightList creates an empty weight list
func NewWeightList() *WeightList {
	return &WeightList{newEntryList[*Weight](EntryKindWeight, matchWeight)}
}

// SelectByFilter returns the weights matching c, see EntryList.SelectByFilter
func (l *WeightList) SelectByFilter(c *FilterCriteria) (*WeightList, error) {
	selected, err := l.EntryList.SelectByFilter(c)
	if err != nil {
		return nil, err
	}
	if selected == l.EntryList {
		return l, nil
	}
	return &WeightList{selected}, nil
}

func matchWeight(w *Weight, f *compiledFilter) bool {
	return matchEntry(w, f)
}

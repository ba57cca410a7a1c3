package request

import "sort"

// Occasion is a kind of statutory absence that needs no approval and does
// not draw from the leave pool.
type Occasion struct {
	Kind string
	Days int
	Info string
}

const (
	OccasionWedding      = "WEDDING"
	OccasionChildBirth   = "CHILD_BIRTH"
	OccasionFuneral      = "FUNERAL"
	OccasionChildWedding = "CHILD_WEDDING"
	OccasionCloseFuneral = "CLOSE_FUNERAL"
)

var occasions = map[string]Occasion{
	OccasionWedding:      {Kind: OccasionWedding, Days: 2, Info: "Own wedding"},
	OccasionChildBirth:   {Kind: OccasionChildBirth, Days: 2, Info: "Birth of a child"},
	OccasionFuneral:      {Kind: OccasionFuneral, Days: 2, Info: "Funeral of a spouse, child, parent or step-parent"},
	OccasionChildWedding: {Kind: OccasionChildWedding, Days: 1, Info: "Wedding of a child"},
	OccasionCloseFuneral: {Kind: OccasionCloseFuneral, Days: 1, Info: "Funeral of a sibling, grandparent, parent-in-law or other dependant"},
}

func LookupOccasion(kind string) (Occasion, bool) {
	o, ok := occasions[kind]
	return o, ok
}

func Occasions() []Occasion {
	list := make([]Occasion, 0, len(occasions))
	for _, o := range occasions {
		list = append(list, o)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Kind < list[j].Kind })
	return list
}

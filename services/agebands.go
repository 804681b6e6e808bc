package services

import (
	"sort"

	"pugorugh/models"
)

// AgeRange is an inclusive range of ages in months.
type AgeRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// AgeSet is a union of non-overlapping ranges, ascending by Min.
type AgeSet []AgeRange

// Band boundaries are fixed and do not overlap.
var ageBandRanges = map[models.AgeBand]AgeRange{
	models.AgeBaby:   {Min: 1, Max: 10},
	models.AgeYoung:  {Min: 11, Max: 29},
	models.AgeAdult:  {Min: 30, Max: 69},
	models.AgeSenior: {Min: 70, Max: 99},
}

// FullAgeRange is used whenever no recognised band was requested.
var FullAgeRange = AgeRange{Min: 1, Max: 99}

// ResolveAgeBands returns the union of the ranges of every requested band.
// Unknown bands are ignored; if nothing is left the full range is returned,
// so the resolver never filters every dog out.
func ResolveAgeBands(bands []models.AgeBand) AgeSet {
	var ranges []AgeRange
	seen := make(map[models.AgeBand]bool, len(bands))
	for _, b := range bands {
		r, ok := ageBandRanges[b]
		if !ok || seen[b] {
			continue
		}
		seen[b] = true
		ranges = append(ranges, r)
	}
	if len(ranges) == 0 {
		return AgeSet{FullAgeRange}
	}

	sort.Slice(ranges, func(i, j int) bool { return ranges[i].Min < ranges[j].Min })

	// collapse touching ranges: baby+young becomes [1,29]
	out := AgeSet{ranges[0]}
	for _, r := range ranges[1:] {
		last := &out[len(out)-1]
		if r.Min <= last.Max+1 {
			if r.Max > last.Max {
				last.Max = r.Max
			}
			continue
		}
		out = append(out, r)
	}
	return out
}

func (s AgeSet) Contains(age int) bool {
	for _, r := range s {
		if age >= r.Min && age <= r.Max {
			return true
		}
	}
	return false
}

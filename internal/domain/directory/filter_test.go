package directory

import (
	"testing"

	"github.com/Abros3006/business-tracker/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func sampleBusinesses() []*entity.Business {
	return []*entity.Business{
		{Name: "Campus Coffee", Description: "Cold brew for finals week", Industry: "Food", Featured: true},
		{Name: "Byte Tutors", Description: "Peer programming lessons", Industry: "Education"},
		{Name: "Thread Lab", Description: "Upcycled campus apparel", Industry: "Fashion", Featured: true},
		{Name: "Snack Drop", Description: "Late night FOOD delivery", Industry: "Logistics"},
	}
}

func names(list []*entity.Business) []string {
	out := make([]string, 0, len(list))
	for _, b := range list {
		out = append(out, b.Name)
	}

	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		term     string
		industry string
		want     []string
	}{
		{name: "empty filters keep everything", want: []string{"Campus Coffee", "Byte Tutors", "Thread Lab", "Snack Drop"}},
		{name: "matches name case-insensitively", term: "BYTE", want: []string{"Byte Tutors"}},
		{name: "matches description", term: "campus", want: []string{"Campus Coffee", "Thread Lab"}},
		{name: "matches industry text", term: "food", want: []string{"Campus Coffee", "Snack Drop"}},
		{name: "industry filter is exact", industry: "Food", want: []string{"Campus Coffee"}},
		{name: "industry filter is case-sensitive", industry: "food", want: []string{}},
		{name: "term AND industry", term: "campus", industry: "Fashion", want: []string{"Thread Lab"}},
		{name: "no match", term: "quantum", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(Filter(sampleBusinesses(), tt.term, tt.industry)))
		})
	}
}

func TestFilter_Idempotent(t *testing.T) {
	once := Filter(sampleBusinesses(), "campus", "")
	twice := Filter(once, "campus", "")

	assert.Equal(t, once, twice)
}

func TestFilter_SkipsNil(t *testing.T) {
	list := append(sampleBusinesses(), nil)

	assert.Len(t, Filter(list, "", ""), 4)
}

func TestIndustries(t *testing.T) {
	list := append(sampleBusinesses(), &entity.Business{Name: "Other Coffee", Industry: "Food"}, &entity.Business{Name: "No Industry"})

	assert.Equal(t, []string{"Education", "Fashion", "Food", "Logistics"}, Industries(list))
}

func TestCountFeatured(t *testing.T) {
	assert.Equal(t, 2, CountFeatured(sampleBusinesses()))
	assert.Equal(t, 0, CountFeatured(nil))
}

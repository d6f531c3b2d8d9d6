package estimate

import (
	"fmt"
	"strings"

	"github.com/lvgroup1/eksperti-sub000/catalog/algorithms"
)

// RoomSelection is the user's room-type checklist entry: a room type and
// how many of that type were affected.
type RoomSelection struct {
	RoomType string `json:"room_type"`
	Count    int    `json:"count"`
}

// RoomInstance is one concrete affected room. Instances are derived state:
// the whole list is regenerated whenever the selections change, and ids are
// deterministic so the same selections always produce the same instances.
type RoomInstance struct {
	ID           string   `json:"id"`
	RoomType     string   `json:"room_type"`
	Index        int      `json:"index"`
	DamagedAreas []string `json:"damaged_areas"`
	Note         string   `json:"note"`
}

// RoomDetail carries the per-instance edits (damaged areas, note) the
// client still holds for an instance id.
type RoomDetail struct {
	DamagedAreas []string `json:"damaged_areas"`
	Note         string   `json:"note"`
}

// BuildRoomInstances projects room selections into fresh instances, one per
// count unit, in selection order. Instances start with empty area and note
// state; regeneration discards prior per-instance edits.
func BuildRoomInstances(selections []RoomSelection) []RoomInstance {
	var instances []RoomInstance
	for _, sel := range selections {
		if strings.TrimSpace(sel.RoomType) == "" || sel.Count <= 0 {
			continue
		}
		slug := roomSlug(sel.RoomType)
		for i := 1; i <= sel.Count; i++ {
			instances = append(instances, RoomInstance{
				ID:           fmt.Sprintf("%s-%d", slug, i),
				RoomType:     strings.TrimSpace(sel.RoomType),
				Index:        i,
				DamagedAreas: []string{},
			})
		}
	}
	return instances
}

// ApplyRoomDetails copies client-held edits back onto freshly generated
// instances by id. Details for ids that no longer exist are dropped
// silently, which is what happens when a room count was lowered.
func ApplyRoomDetails(instances []RoomInstance, details map[string]RoomDetail) {
	if len(details) == 0 {
		return
	}
	for i := range instances {
		d, ok := details[instances[i].ID]
		if !ok {
			continue
		}
		if len(d.DamagedAreas) > 0 {
			instances[i].DamagedAreas = append([]string{}, d.DamagedAreas...)
		}
		instances[i].Note = d.Note
	}
}

func roomSlug(roomType string) string {
	return strings.ReplaceAll(algorithms.FoldKey(roomType), " ", "-")
}

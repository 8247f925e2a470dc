package models

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestActivityLog_Prepend_NewestFirst(t *testing.T) {
	log := ActivityLog{{Action: "old"}}

	out := log.Prepend(ActivityEntry{Action: "new", Timestamp: time.Now()})

	assert.Len(t, out, 2)
	assert.Equal(t, "new", out[0].Action)
	assert.Equal(t, "old", out[1].Action)
	// receiver untouched
	assert.Len(t, log, 1)
}

func TestActivityLog_Prepend_EvictsBeyondLimit(t *testing.T) {
	log := make(ActivityLog, 0, ActivityLogLimit)
	for i := 0; i < ActivityLogLimit; i++ {
		log = append(log, ActivityEntry{Action: fmt.Sprintf("entry-%d", i)})
	}

	out := log.Prepend(ActivityEntry{Action: "newest"})

	assert.Len(t, out, ActivityLogLimit)
	assert.Equal(t, "newest", out[0].Action)
	// the oldest entry fell off the tail
	assert.Equal(t, fmt.Sprintf("entry-%d", ActivityLogLimit-2), out[ActivityLogLimit-1].Action)
}

func TestInventory_Clone_Independent(t *testing.T) {
	inv := Inventory{"part-a": 3, "part-b": 7}

	clone := inv.Clone()
	clone["part-a"] = 99
	delete(clone, "part-b")

	assert.Equal(t, int64(3), inv["part-a"])
	assert.Equal(t, int64(7), inv["part-b"])
}

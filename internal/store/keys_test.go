package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyComposition(t *testing.T) {
	assert.Equal(t, "profile:u1", Key(KindProfile, "u1"))
	assert.Equal(t, "recentSearches:u1", Key(KindRecentSearches, "u1"))
	assert.NotEqual(t, Key(KindNotes, "A"), Key(KindNotes, "B"))
	assert.NotEqual(t, Key(KindNotes, "u1"), Key(KindMessages, "u1"))
}

func TestAllKindsComplete(t *testing.T) {
	require.Len(t, AllKinds, 16)

	seen := make(map[Kind]bool)
	for _, k := range AllKinds {
		assert.False(t, seen[k], "duplicate kind %s", k)
		seen[k] = true
	}

	for _, k := range []Kind{
		KindProfile, KindGraduationInfo, KindCurriculum, KindSchedule,
		KindOnboarding, KindSettings, KindStatistics, KindNotes,
		KindMessages, KindNotifications, KindCourses, KindCompletedCourses,
		KindTimetableCourses, KindGraduationRequirements, KindFavorites,
		KindRecentSearches,
	} {
		assert.True(t, seen[k], "missing kind %s", k)
	}
}

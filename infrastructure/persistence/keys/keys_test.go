package keys

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUserPartitionKey(t *testing.T) {
	assert.Equal(t, "USER#abc-123", UserPartitionKey("abc-123"))
}

func TestUserMetadataSortKey(t *testing.T) {
	assert.Equal(t, "METADATA", UserMetadataSortKey())
}

func TestSortKeyFormats(t *testing.T) {
	ts := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	tests := []struct {
		name string
		key  string
		want string
	}{
		{
			name: "character metadata",
			key:  CharacterMetadataSortKey("Zezima"),
			want: "CHARACTER#METADATA#Zezima",
		},
		{
			name: "goal metadata",
			key:  GoalMetadataSortKey("Zezima", "goal-1"),
			want: "CHARACTER#Zezima#GOAL#METADATA#goal-1",
		},
		{
			name: "goal progress",
			key:  GoalProgressSortKey("Zezima", "goal-1", ts),
			want: "CHARACTER#Zezima#GOAL#goal-1#2025-03-14T09:26:53Z",
		},
		{
			name: "goal latest marker",
			key:  GoalLatestSortKey("Zezima", "goal-1"),
			want: "CHARACTER#Zezima#GOAL#goal-1#LATEST",
		},
		{
			name: "goal earliest marker",
			key:  GoalEarliestSortKey("Zezima", "goal-1"),
			want: "CHARACTER#Zezima#GOAL#goal-1#EARLIEST",
		},
		{
			name: "notification channel",
			key:  NotificationChannelSortKey("DISCORD"),
			want: "NOTIFICATION#DISCORD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.key)
		})
	}
}

// The first token of every sort key names its entity family, which is what
// keeps families from colliding inside one partition.
func TestSortKeyFamilyPrefixes(t *testing.T) {
	ts := time.Now()

	families := map[string]string{
		UserMetadataSortKey():             "METADATA",
		CharacterMetadataSortKey("a"):     "CHARACTER",
		GoalMetadataSortKey("a", "g"):     "CHARACTER",
		GoalProgressSortKey("a", "g", ts): "CHARACTER",
		GoalLatestSortKey("a", "g"):       "CHARACTER",
		GoalEarliestSortKey("a", "g"):     "CHARACTER",
		NotificationChannelSortKey("SMS"): "NOTIFICATION",
	}

	for key, family := range families {
		assert.Equal(t, family, strings.Split(key, "#")[0], "key %q", key)
	}
}

func TestSortKeysAreDeterministic(t *testing.T) {
	ts := time.Now()
	assert.Equal(t, GoalProgressSortKey("a", "g", ts), GoalProgressSortKey("a", "g", ts))
	assert.Equal(t, UserPartitionKey("u1"), UserPartitionKey("u1"))
}

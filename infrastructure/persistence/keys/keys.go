// Package keys builds the composite keys for the shared single-table
// layout. Every record lives under a user partition (PK "USER#<userId>")
// and is distinguished by a "#"-delimited sort key whose first token names
// the entity family, so families can never collide within one partition.
//
// All builders are pure: same inputs, same key. Keys double as idempotency
// anchors for conditional writes, so they must never depend on ambient
// state. Content validation of the identifier components belongs to the
// callers; the builders only assemble.
package keys

import (
	"fmt"
	"time"
)

const (
	userPrefix   = "USER"
	metadata     = "METADATA"
	character    = "CHARACTER"
	goal         = "GOAL"
	notification = "NOTIFICATION"
	latest       = "LATEST"
	earliest     = "EARLIEST"
)

// UserPartitionKey returns the partition key owning every record of a user.
func UserPartitionKey(userID string) string {
	return fmt.Sprintf("%s#%s", userPrefix, userID)
}

// UserMetadataSortKey returns the sort key of the user metadata record.
func UserMetadataSortKey() string {
	return metadata
}

// CharacterMetadataSortKey returns the sort key for a character's metadata.
// Format: CHARACTER#METADATA#<characterName>
func CharacterMetadataSortKey(characterName string) string {
	return fmt.Sprintf("%s#%s#%s", character, metadata, characterName)
}

// GoalMetadataSortKey returns the sort key for a goal's metadata record.
// Format: CHARACTER#<characterName>#GOAL#METADATA#<goalId>
func GoalMetadataSortKey(characterName, goalID string) string {
	return fmt.Sprintf("%s#%s#%s#%s#%s", character, characterName, goal, metadata, goalID)
}

// GoalProgressSortKey returns the sort key for a goal progress sample.
// Format: CHARACTER#<characterName>#GOAL#<goalId>#<timestamp>
func GoalProgressSortKey(characterName, goalID string, timestamp time.Time) string {
	return fmt.Sprintf("%s#%s#%s#%s#%s", character, characterName, goal, goalID,
		timestamp.UTC().Format(time.RFC3339Nano))
}

// GoalLatestSortKey returns the sort key of the bounded LATEST marker for a
// goal's progress.
// Format: CHARACTER#<characterName>#GOAL#<goalId>#LATEST
func GoalLatestSortKey(characterName, goalID string) string {
	return fmt.Sprintf("%s#%s#%s#%s#%s", character, characterName, goal, goalID, latest)
}

// GoalEarliestSortKey returns the sort key of the bounded EARLIEST marker
// for a goal's progress.
// Format: CHARACTER#<characterName>#GOAL#<goalId>#EARLIEST
func GoalEarliestSortKey(characterName, goalID string) string {
	return fmt.Sprintf("%s#%s#%s#%s#%s", character, characterName, goal, goalID, earliest)
}

// NotificationChannelSortKey returns the sort key for a notification
// channel record.
// Format: NOTIFICATION#<channelType>
func NotificationChannelSortKey(channelType string) string {
	return fmt.Sprintf("%s#%s", notification, channelType)
}

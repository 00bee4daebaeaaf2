package session

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Humam-hub/network-log-translator/internal/classifier"
)

func report(text string) ErrorReport {
	return ErrorReport{
		ID:          uuid.New(),
		RawText:     text,
		Explanation: "explanation of " + text,
		Category:    classifier.CategoryNetwork,
		Severity:    classifier.SeverityInfo,
		CreatedAt:   time.Now(),
	}
}

func TestHistoryOrder(t *testing.T) {
	m := NewManager(0)
	sess := m.Create("English")

	for i := 1; i <= 5; i++ {
		sess.Record(report(fmt.Sprintf("error %d", i)))
	}

	// Recent(3) after 5 inserts returns entries 5, 4, 3.
	recent := sess.Recent(3)
	require.Len(t, recent, 3)
	assert.Equal(t, "error 5", recent[0].RawText)
	assert.Equal(t, "error 4", recent[1].RawText)
	assert.Equal(t, "error 3", recent[2].RawText)

	assert.Equal(t, 5, sess.Len())
}

func TestRecentMoreThanRecorded(t *testing.T) {
	m := NewManager(0)
	sess := m.Create("English")
	sess.Record(report("only one"))

	recent := sess.Recent(3)
	require.Len(t, recent, 1)
	assert.Equal(t, "only one", recent[0].RawText)

	assert.Empty(t, m.Create("English").Recent(3))
}

func TestManagerLifecycle(t *testing.T) {
	m := NewManager(0)

	sess := m.Create("Spanish")
	assert.Equal(t, "Spanish", sess.Language)
	assert.Equal(t, 1, m.Count())

	assert.Same(t, sess, m.Get(sess.ID))
	assert.Nil(t, m.Get(uuid.New()))

	m.Delete(sess.ID)
	assert.Nil(t, m.Get(sess.ID))
	assert.Equal(t, 0, m.Count())

	// Deleting again is a no-op.
	m.Delete(sess.ID)
}

func TestReap(t *testing.T) {
	m := NewManager(time.Hour)

	stale := m.Create("English")
	fresh := m.Create("English")

	stale.mu.Lock()
	stale.lastActive = time.Now().Add(-2 * time.Hour)
	stale.mu.Unlock()

	m.reap(time.Now().Add(-time.Hour))
	assert.Nil(t, m.Get(stale.ID))
	assert.NotNil(t, m.Get(fresh.ID))
}

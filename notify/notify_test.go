package notify_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/go-storefront-client/notify"
)

func TestPushAndList(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	center := notify.NewCenter(notify.WithNowTime(func() time.Time { return now }))

	id := center.Push(notify.LevelError, "could not load cart")
	require.NotEmpty(t, id)

	list := center.List()
	require.Len(t, list, 1)
	require.Equal(t, notify.LevelError, list[0].Level)
	require.Equal(t, "could not load cart", list[0].Message)
	require.Equal(t, now, list[0].Timestamp)
}

func TestListIsOldestFirst(t *testing.T) {
	center := notify.NewCenter()
	center.Push(notify.LevelInfo, "first")
	center.Push(notify.LevelSuccess, "second")

	list := center.List()
	require.Len(t, list, 2)
	require.Equal(t, "first", list[0].Message)
	require.Equal(t, "second", list[1].Message)
}

func TestDismissRemovesOnlyMatchingNotification(t *testing.T) {
	center := notify.NewCenter()
	first := center.Push(notify.LevelInfo, "keep")
	second := center.Push(notify.LevelWarning, "dismiss")

	center.Dismiss(second)
	center.Dismiss("unknown-id")

	list := center.List()
	require.Len(t, list, 1)
	require.Equal(t, first, list[0].ID)
}

func TestClear(t *testing.T) {
	center := notify.NewCenter()
	center.Push(notify.LevelInfo, "one")
	center.Push(notify.LevelInfo, "two")

	center.Clear()
	require.Empty(t, center.List())
}

func TestListReturnsACopy(t *testing.T) {
	center := notify.NewCenter()
	center.Push(notify.LevelInfo, "original")

	list := center.List()
	list[0].Message = "mutated"

	require.Equal(t, "original", center.List()[0].Message)
}

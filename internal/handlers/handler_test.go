package handlers

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/require"
)

func TestDisplayNameFallbacks(t *testing.T) {
	require.Equal(t, "alice",
		displayName(&tgbotapi.User{ID: 7, UserName: "alice", FirstName: "Alice"}))
	require.Equal(t, "Alice",
		displayName(&tgbotapi.User{ID: 7, FirstName: "Alice", LastName: "Smith"}))
	require.Equal(t, "Smith",
		displayName(&tgbotapi.User{ID: 7, LastName: "Smith"}))
	require.Equal(t, "Unknown user 7",
		displayName(&tgbotapi.User{ID: 7}))
	require.Equal(t, "Unknown user", displayName(nil))
}

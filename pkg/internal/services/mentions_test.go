package services

import (
	"fmt"
	"testing"

	"github.com/staylio/messaging/pkg/internal/directory"
	"github.com/staylio/messaging/pkg/internal/models"
)

func TestExtractMentionNames(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected []string
	}{
		{
			name:     "No mentions",
			content:  "just a plain message",
			expected: nil,
		},
		{
			name:     "Single mention",
			content:  "hey @alice, got a minute?",
			expected: []string{"alice"},
		},
		{
			name:     "Duplicate mention collapses",
			content:  "Hey @alice and @alice, check this",
			expected: []string{"alice"},
		},
		{
			name:     "Case folds to lowercase",
			content:  "ping @Alice and @BOB",
			expected: []string{"alice", "bob"},
		},
		{
			name:     "Mention with punctuation boundary",
			content:  "thanks @carol-2!",
			expected: []string{"carol-2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractMentionNames(tt.content)
			if len(got) != len(tt.expected) {
				t.Fatalf("ExtractMentionNames(%q) = %v, want %v", tt.content, got, tt.expected)
			}
			for idx := range got {
				if got[idx] != tt.expected[idx] {
					t.Errorf("ExtractMentionNames(%q)[%d] = %q, want %q", tt.content, idx, got[idx], tt.expected[idx])
				}
			}
		})
	}
}

type fakeDirectory struct {
	users map[string]models.Account
}

func (f fakeDirectory) GetUser(id uint) (models.Account, error) {
	for _, account := range f.users {
		if account.ID == id {
			return account, nil
		}
	}
	return models.Account{}, fmt.Errorf("account not found")
}

func (f fakeDirectory) GetUserByName(name string) (models.Account, error) {
	if account, ok := f.users[name]; ok {
		return account, nil
	}
	return models.Account{}, fmt.Errorf("account not found")
}

func (f fakeDirectory) ListUsers(idx []uint) ([]models.Account, error) {
	var out []models.Account
	for _, id := range idx {
		if account, err := f.GetUser(id); err == nil {
			out = append(out, account)
		}
	}
	return out, nil
}

func withFakeDirectory(t *testing.T, users map[string]models.Account) {
	t.Helper()
	prev := directory.D
	directory.Use(fakeDirectory{users: users})
	t.Cleanup(func() { directory.Use(prev) })
}

func TestResolveMentionsDeduplicates(t *testing.T) {
	alice := models.Account{BaseModel: models.BaseModel{ID: 2}, Name: "alice"}
	withFakeDirectory(t, map[string]models.Account{"alice": alice})

	resolved, err := ResolveMentions("Hey @alice and @alice, check this", 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(resolved) != 1 {
		t.Fatalf("expected exactly one resolved mention, got %d", len(resolved))
	}
	if resolved[0].ID != 2 {
		t.Errorf("resolved wrong account: %d", resolved[0].ID)
	}
}

func TestResolveMentionsSkipsAuthorAndUnknown(t *testing.T) {
	alice := models.Account{BaseModel: models.BaseModel{ID: 2}, Name: "alice"}
	withFakeDirectory(t, map[string]models.Account{"alice": alice})

	resolved, err := ResolveMentions("@alice @ghost @nobody", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(resolved) != 0 {
		t.Fatalf("author self-mention and unknown tokens should resolve to nothing, got %v", resolved)
	}
}

func TestMessagePreviewTruncates(t *testing.T) {
	long := make([]rune, 0, 200)
	for i := 0; i < 200; i++ {
		long = append(long, 'x')
	}

	preview := MessagePreview(models.Message{Content: string(long)})
	if got := len([]rune(preview)); got != 81 {
		t.Errorf("expected 80 runes plus ellipsis, got %d", got)
	}

	if got := MessagePreview(models.Message{Content: ""}); got != "sent an attachment" {
		t.Errorf("attachment-only fallback broken: %q", got)
	}
}

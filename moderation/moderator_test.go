package moderation

import (
	"fmt"
	"log/slog"
	"testing"
	"testing/fstest"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

const replacementChar = '*'

// The dictionary uses specific words to avoid partial collisions (e.g., "he" inside "The")
func TestModerator_Censor(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	dictionary := []string{"estafa", "basura", "idiota"}
	mod, err := NewModerator(dictionary, replacementChar, log)
	req.NoError(err)

	tests := []struct {
		name     string
		input    string
		expected string
		words    []string
	}{
		{
			name:     "Simple word and space preservation",
			input:    "Esto es una estafa total",
			expected: "Esto es una ****** total",
			words:    []string{"estafa"},
		},
		{
			name:     "Multiple occurrences",
			input:    "basura basura",
			expected: "****** ******",
			words:    []string{"basura", "basura"},
		},
		{
			name:     "Leet speak and internal punctuation",
			input:    "Que 3.5.t.4.f.4 !",
			expected: "Que *********** !",
			words:    []string{"estafa"},
		},
		{
			name:     "Uppercase and noise",
			input:    "I-D-I-O-T-A el repartidor",
			expected: "*********** el repartidor",
			words:    []string{"idiota"},
		},
		{
			name:     "Accents are kept",
			input:    "Llegó frío y era basura",
			expected: "Llegó frío y era ******",
			words:    []string{"basura"},
		},
		{
			name:     "Nothing to censor",
			input:    "Excelente atención, volveré",
			expected: "Excelente atención, volveré",
			words:    nil,
		},
		{
			name:     "Empty string",
			input:    "",
			expected: "",
			words:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, words := mod.Censor(tt.input)
			req.Equal(tt.expected, content, "test=%s,", tt.name)
			req.Equal(tt.words, words, "expected=%s,words=%s", tt.expected, words)
		})
	}
}

func TestModerator_CornerCases(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	// Given pure noise entries in the dictionary
	mod, err := NewModerator([]string{"...", ",,,", "", "basura"}, replacementChar, log)
	req.NoError(err)

	// Then real words are still censored
	content, words := mod.Censor("La comida es basura")
	req.Equal("La comida es ******", content)
	req.Equal([]string{"basura"}, words)

	// And punctuation is left alone
	content, words = mod.Censor("Hola ...")
	req.Equal("Hola ...", content)
	req.Nil(words)
}

func TestModerator_Moderate(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	mod, err := NewModerator([]string{"basura"}, replacementChar, log)
	req.NoError(err)

	censored, changed, lang := mod.Moderate("El pedido llegó tarde y la comida estaba fría, una verdadera basura")
	req.True(changed)
	req.Contains(censored, "******")
	req.Equal("es", lang)

	censored, changed, lang = mod.Moderate("")
	req.False(changed)
	req.Empty(censored)
	req.Empty(lang)
}

func TestLoadDictionary(t *testing.T) {
	req := require.New(t)

	t.Run("should merge embedded lists and extra words", func(t *testing.T) {
		dict, err := LoadDictionary([]string{" Fraude ", ""})
		req.NoError(err)
		req.ElementsMatch([]string{"en", "es"}, dict.Languages)
		req.Contains(dict.Words, "fraude")
		req.Contains(dict.Words, "estafa")
		req.NotContains(dict.Words, "# palabras censuradas en resenas")
	})

	t.Run("should fail on an empty dictionary", func(t *testing.T) {
		fsys := fstest.MapFS{"censored/es.txt": &fstest.MapFile{Data: []byte("\n\r\n")}}
		_, err := loadFrom(fsys, "censored", nil)
		req.Error(err)
	})
}

func BenchmarkModerator_Moderate(b *testing.B) {
	log := logs.GetLoggerFromLevel(slog.LevelError)
	words := make([]string, 0, 10_000)
	for i := 0; i < 10_000; i++ {
		words = append(words, fmt.Sprintf("palabra%d", i))
	}
	mod, err := NewModerator(words, replacementChar, log)
	if err != nil {
		b.Fatal(err)
	}
	review := "Muy buena atención, el pedido llegó a tiempo y la palabra42 no aparece en el menú"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		mod.Moderate(review)
	}
}

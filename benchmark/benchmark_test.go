package benchmark

import (
	"strings"
	"testing"

	"github.com/baditaflorin/go_simhash_similarity/internal/adapters/logger"
	"github.com/baditaflorin/go_simhash_similarity/internal/core/fingerprint"
	"github.com/baditaflorin/go_simhash_similarity/internal/core/hasher"
	"github.com/baditaflorin/go_simhash_similarity/internal/core/simhash"
	"github.com/baditaflorin/go_simhash_similarity/internal/core/tokenizer"
)

// generateText creates a text of the specified size by repeating a sample text
func generateText(size int) string {
	if size <= 0 {
		return ""
	}

	sample := "The quick brown fox jumps over the lazy dog. 今天天气晴朗，适合出去散步。 This sentence is commonly used for testing text processing algorithms and systems."
	var sb strings.Builder
	sb.Grow(size)

	for sb.Len() < size {
		sb.WriteString(sample)
		sb.WriteString(" ")
	}
	return sb.String()
}

var sizes = []struct {
	name string
	size int
}{
	{"Small", 100},
	{"Medium", 10 * 1024},
	{"Large", 1024 * 1024},
}

func BenchmarkTokenize(b *testing.B) {
	tok := tokenizer.Default()
	for _, s := range sizes {
		text := generateText(s.size)
		b.Run(s.name, func(b *testing.B) {
			b.SetBytes(int64(len(text)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = tok.Tokenize(text)
			}
		})
	}
}

func BenchmarkHash(b *testing.B) {
	h := hasher.Default()
	for i := 0; i < b.N; i++ {
		_ = h.Hash("consectetur")
	}
}

func BenchmarkBuild(b *testing.B) {
	builder := fingerprint.NewBuilder(hasher.Default())
	tokens := tokenizer.Default().Tokenize(generateText(10 * 1024))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = builder.Build(tokens)
	}
}

func BenchmarkCompare(b *testing.B) {
	calc, err := simhash.NewCalculator(simhash.DefaultConfig(), logger.NewNopLogger())
	if err != nil {
		b.Fatalf("Failed to create calculator: %v", err)
	}

	for _, s := range sizes {
		original := generateText(s.size)
		modified := strings.ReplaceAll(original, "lazy", "sleepy")
		b.Run(s.name, func(b *testing.B) {
			b.SetBytes(int64(len(original) + len(modified)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = calc.Compare(original, modified)
			}
		})
	}
}

func BenchmarkCompareParallel(b *testing.B) {
	calc, err := simhash.NewCalculator(simhash.DefaultConfig(), logger.NewNopLogger())
	if err != nil {
		b.Fatalf("Failed to create calculator: %v", err)
	}
	original := generateText(10 * 1024)
	modified := strings.ReplaceAll(original, "fox", "cat")

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = calc.Compare(original, modified)
		}
	})
}

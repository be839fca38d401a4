package naming

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Word pools for batch run labels. Short, log-friendly, no collisions with
// prompt template names.
var (
	adjectives = []string{
		"amber", "bold", "brisk", "calm", "clear", "deft", "eager", "fresh",
		"keen", "lucid", "mellow", "nimble", "quiet", "rapid", "sharp",
		"steady", "sunny", "swift", "tidy", "vivid",
	}
	nouns = []string{
		"abstract", "archive", "citation", "corpus", "digest", "draft",
		"figure", "folio", "index", "journal", "lemma", "margin", "outline",
		"preprint", "quartile", "reader", "shelf", "survey", "thesis", "volume",
	}
)

// RunLabel returns a hyphenated pair identifying one batch run in logs and
// summaries.
func RunLabel() (string, error) {
	return labelWith(cryptoRandInt)
}

func labelWith(randInt func(*big.Int) (*big.Int, error)) (string, error) {
	adj, err := pick(randInt, adjectives)
	if err != nil {
		return "", err
	}
	noun, err := pick(randInt, nouns)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%s", adj, noun), nil
}

func cryptoRandInt(max *big.Int) (*big.Int, error) {
	return rand.Int(rand.Reader, max)
}

func pick(randInt func(*big.Int) (*big.Int, error), options []string) (string, error) {
	i, err := randInt(big.NewInt(int64(len(options))))
	if err != nil {
		return "", fmt.Errorf("naming pick failed: %w", err)
	}
	return options[i.Int64()], nil
}

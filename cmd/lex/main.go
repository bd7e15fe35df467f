package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lm98/tbasic-rsc/lib"
	"github.com/sirupsen/logrus"
)

func main() {
	source, err := readSource()
	if err != nil {
		logrus.WithError(err).Fatal("could not read source")
	}

	// The language treats newlines as unexpected characters, so a trailing
	// one from the shell or editor would fail every run.
	source = strings.TrimRight(source, "\n")

	tokens, err := lib.Tokenize(source)
	if err != nil {
		logrus.WithError(err).Fatal("tokenization failed")
	}

	for _, tok := range tokens {
		switch tok.Type {
		case lib.TokenTypeNumber:
			fmt.Printf("%s(%d)\n", tok.Type, tok.Number)
		case lib.TokenTypeIdentifier:
			fmt.Printf("%s(%s)\n", tok.Type, tok.Name)
		default:
			fmt.Println(tok.Type)
		}
	}
}

func readSource() (string, error) {
	if len(os.Args) > 1 {
		bytes, err := os.ReadFile(os.Args[1])
		return string(bytes), err
	}
	bytes, err := io.ReadAll(os.Stdin)
	return string(bytes), err
}

package scribe_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/mossline/scribe/pkg/scribe"
)

func Example() {
	dir, err := os.MkdirTemp("", "scribe-example")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	session := `{"message":{"role":"user","content":"hello"}}` + "\n" +
		`{"message":{"role":"assistant","content":"hi there"}}` + "\n"
	if err := os.WriteFile(filepath.Join(dir, "a.jsonl"), []byte(session), 0644); err != nil {
		log.Fatal(err)
	}

	res, err := scribe.Extract(context.Background(), scribe.WithPath(dir))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("messages: %d\n", res.Stats.Messages)
	fmt.Println(strings.Contains(res.Document, "hi there"))
	// Output:
	// messages: 2
	// true
}

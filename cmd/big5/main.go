package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/hanconv/big5/table"
	"github.com/hanconv/big5/transcode"
)

func main() {
	var (
		text        = flag.String("text", "", "Text to transcode to Big5 codes")
		code        = flag.String("code", "", "4-hex-digit Big5 code to resolve")
		annotate    = flag.Bool("annotate", false, "Annotate each code with its source character")
		copyOut     = flag.Bool("copy", false, "Copy the result to the clipboard")
		verbose     = flag.Bool("v", false, "Verbose logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err == nil {
			table.SetLogger(logger)
			defer logger.Sync()
		}
	}

	if *interactive {
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*text, *code, *annotate, *copyOut); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(text, code string, annotate, copyOut bool) error {
	tbl := table.Default()

	if code != "" {
		res := transcode.Resolve(tbl, code)
		switch res.State {
		case transcode.Found:
			fmt.Println(string(res.Char))
		case transcode.NotFound:
			fmt.Println("not found")
		case transcode.Incomplete:
			return fmt.Errorf("code %q is not 4 hex digits", code)
		}
		return nil
	}

	if text == "" {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprintln(os.Stderr, "Usage: big5 -text <text> [-annotate] [-copy]")
			fmt.Fprintln(os.Stderr, "       big5 -code <hex>")
			fmt.Fprintln(os.Stderr, "       big5 -i  (interactive mode)")
			fmt.Fprintln(os.Stderr, "       echo <text> | big5")
			os.Exit(1)
		}
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		text = string(data)
		// A trailing newline from a pipe is input framing, not a blank line.
		if n := len(text); n > 0 && text[n-1] == '\n' {
			text = text[:n-1]
		}
	}

	out := transcode.New(tbl, annotate).Transcode(text)
	fmt.Println(out)

	if copyOut {
		if err := clipboard.WriteAll(out); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
	}
	return nil
}

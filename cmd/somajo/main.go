// Command somajo tokenizes German and English web and social media texts.
//
// It reads a text or XML file (or stdin) and prints one token per line,
// with paragraphs separated by empty lines. Token classes and alignment
// annotations are printed as additional tab-separated columns on request.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/cloudfoundry/jibber_jabber"
	pool "github.com/jolestar/go-commons-pool"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/AndreasBlombach/SoMaJo"
)

type config struct {
	Language           string `yaml:"language"`
	SplitCamelCase     bool   `yaml:"split_camel_case"`
	TokenClasses       bool   `yaml:"token_classes"`
	ExtraInfo          bool   `yaml:"extra_info"`
	XML                bool   `yaml:"xml"`
	Parallel           int    `yaml:"parallel"`
	ParagraphSeparator string `yaml:"paragraph_separator"`
}

// defaultLanguage falls back to the system locale when it names a
// supported language.
func defaultLanguage() string {
	if lang, err := jibber_jabber.DetectLanguage(); err == nil {
		if lang == "de" || lang == "en" {
			return lang
		}
	}
	return "de"
}

func main() {
	cfg := config{
		Language:           defaultLanguage(),
		Parallel:           1,
		ParagraphSeparator: somajo.EmptyLine,
	}
	var profile string

	cmd := &cobra.Command{
		Use:   "somajo [file]",
		Short: "Tokenizer for German and English web and social media texts",
		Long: `somajo splits informal written text into tokens according to the
guidelines of the EmpiriST 2015 shared task. Input is read from the given
file or from stdin; tokens are printed one per line with empty lines
between paragraphs.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if profile != "" {
				if err := loadProfile(profile, &cfg, cmd); err != nil {
					return err
				}
			}
			in := io.Reader(os.Stdin)
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			return run(cfg, in, os.Stdout)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfg.Language, "language", "l", cfg.Language, "rule set language (de or en)")
	flags.BoolVar(&cfg.SplitCamelCase, "split-camel-case", false, "split tokens written in camelCase")
	flags.BoolVarP(&cfg.TokenClasses, "token-classes", "c", false, "print token classes")
	flags.BoolVarP(&cfg.ExtraInfo, "extra-info", "e", false, "print SpaceAfter and OriginalSpelling annotations")
	flags.BoolVar(&cfg.XML, "xml", false, "treat input as XML")
	flags.IntVarP(&cfg.Parallel, "parallel", "j", 1, "number of paragraphs to tokenize in parallel")
	flags.StringVar(&cfg.ParagraphSeparator, "paragraph-separator", cfg.ParagraphSeparator,
		"paragraph separator in text input (empty_line or single_newline)")
	flags.StringVar(&profile, "profile", "", "YAML file with option defaults")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "somajo:", err)
		os.Exit(1)
	}
}

// loadProfile reads option defaults from a YAML file. Flags given on the
// command line take precedence over profile values.
func loadProfile(path string, cfg *config, cmd *cobra.Command) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	fromFile := config{}
	if err := yaml.Unmarshal(data, &fromFile); err != nil {
		return fmt.Errorf("profile %s: %w", path, err)
	}
	flags := cmd.Flags()
	if fromFile.Language != "" && !flags.Changed("language") {
		cfg.Language = fromFile.Language
	}
	if !flags.Changed("split-camel-case") {
		cfg.SplitCamelCase = fromFile.SplitCamelCase
	}
	if !flags.Changed("token-classes") {
		cfg.TokenClasses = fromFile.TokenClasses
	}
	if !flags.Changed("extra-info") {
		cfg.ExtraInfo = fromFile.ExtraInfo
	}
	if !flags.Changed("xml") {
		cfg.XML = fromFile.XML
	}
	if fromFile.Parallel > 0 && !flags.Changed("parallel") {
		cfg.Parallel = fromFile.Parallel
	}
	if fromFile.ParagraphSeparator != "" && !flags.Changed("paragraph-separator") {
		cfg.ParagraphSeparator = fromFile.ParagraphSeparator
	}
	return nil
}

func run(cfg config, in io.Reader, out io.Writer) error {
	opts := somajo.Options{
		Language:       cfg.Language,
		SplitCamelCase: cfg.SplitCamelCase,
		TokenClasses:   cfg.TokenClasses,
		ExtraInfo:      cfg.ExtraInfo,
	}
	w := bufio.NewWriter(out)
	defer w.Flush()
	if cfg.XML {
		return runXML(opts, cfg, in, w)
	}
	paragraphs, err := somajo.Paragraphs(in, cfg.ParagraphSeparator)
	if err != nil {
		return err
	}
	results, err := tokenizeAll(opts, paragraphs, cfg.Parallel)
	if err != nil {
		return err
	}
	for i, records := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		printRecords(w, cfg, records)
	}
	return w.Flush()
}

func runXML(opts somajo.Options, cfg config, in io.Reader, w *bufio.Writer) error {
	smj := somajo.New(opts)
	if cfg.ExtraInfo {
		data, err := io.ReadAll(in)
		if err != nil {
			return err
		}
		annotated, err := smj.AnnotateXML(data)
		if err != nil {
			return err
		}
		_, err = w.Write(annotated)
		return err
	}
	records, err := smj.TokenizeXML(in, false)
	if err != nil {
		return err
	}
	printRecords(w, cfg, records)
	return w.Flush()
}

// tokenizeAll tokenizes the paragraphs with up to parallel workers, each
// borrowing a tokenizer instance from a shared pool, and returns the
// results in input order.
func tokenizeAll(opts somajo.Options, paragraphs []string, parallel int) ([][]somajo.Record, error) {
	if parallel < 1 {
		parallel = 1
	}
	ctx := context.Background()
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return somajo.New(opts), nil
		})
	p := pool.NewObjectPoolWithDefaultConfig(ctx, factory)
	p.Config.MaxTotal = parallel
	defer p.Close(ctx)

	results := make([][]somajo.Record, len(paragraphs))
	errs := make([]error, parallel)
	jobs := make(chan int)
	var wg sync.WaitGroup
	for worker := 0; worker < parallel; worker++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for i := range jobs {
				if errs[worker] != nil {
					continue // keep draining so the sender never blocks
				}
				obj, err := p.BorrowObject(ctx)
				if err != nil {
					errs[worker] = err
					continue
				}
				results[i] = obj.(*somajo.SoMaJo).TokenizeText(paragraphs[i])
				if err := p.ReturnObject(ctx, obj); err != nil {
					errs[worker] = err
				}
			}
		}(worker)
	}
	for i := range paragraphs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

func printRecords(w io.Writer, cfg config, records []somajo.Record) {
	for _, rec := range records {
		fmt.Fprint(w, rec.Text)
		if cfg.TokenClasses {
			fmt.Fprint(w, "\t", rec.Class)
		}
		if cfg.ExtraInfo {
			fmt.Fprint(w, "\t", rec.ExtraInfo)
		}
		fmt.Fprintln(w)
	}
}

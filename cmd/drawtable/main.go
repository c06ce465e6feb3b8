// Command drawtable computes the draw table locally and writes it to a file.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/bytecamp2019d/drawtable/internal/config"
	"github.com/bytecamp2019d/drawtable/internal/logging"
	"github.com/bytecamp2019d/drawtable/pkg/drawtable"
	"github.com/bytecamp2019d/drawtable/pkg/tablefile"
	"golang.org/x/text/language"
)

func main() {
	out := flag.String("out", tablefile.DefaultName, "file the table is written to")
	report := flag.Bool("report", false, "also print a readable table on stdout")
	lang := flag.String("lang", "en", "language used to format the report")
	flag.Parse()

	cfg, err := config.LoadLog()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger, err := logging.Setup(cfg, os.Stderr)
	if err != nil {
		log.Fatalf("set up logging: %v", err)
	}
	tag, err := language.Parse(*lang)
	if err != nil {
		log.Fatalf("invalid -lang: %v", err)
	}

	rows, err := drawtable.NewBuilder(logger).Table()
	if err != nil {
		log.Fatalf("build table: %v", err)
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if err := tablefile.Write(f, rows); err != nil {
		f.Close()
		log.Fatalf("write %s: %v", *out, err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}
	logger.Info("table written", "path", *out)

	if *report {
		if err := tablefile.WriteReport(os.Stdout, rows, tag); err != nil {
			log.Fatalf("report: %v", err)
		}
	}
}

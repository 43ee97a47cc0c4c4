package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/lottery-results-api/internal/domain"
	"github.com/vfg2006/lottery-results-api/internal/registry"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type printer struct {
	out     io.Writer
	asJSON  bool
	header  *color.Color
	ok      *color.Color
	warning *color.Color
	failure *color.Color
}

func newPrinter(out io.Writer, asJSON bool) *printer {
	return &printer{
		out:     out,
		asJSON:  asJSON,
		header:  color.New(color.Bold),
		ok:      color.New(color.FgGreen),
		warning: color.New(color.FgYellow),
		failure: color.New(color.FgRed),
	}
}

func (p *printer) Registry(entries []registry.Entry) error {
	if p.asJSON {
		return p.json(entries)
	}

	w := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	p.header.Fprintln(w, "SLUG\tNOME\tPAÍS\tRESULTADOS\tPRÊMIO")
	for _, entry := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", entry.Slug, entry.Name, entry.Country, source(entry.Results), source(entry.Jackpot))
	}
	return w.Flush()
}

func (p *printer) Results(report domain.ResultsReport) error {
	if p.asJSON {
		return p.json(report)
	}

	w := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	p.header.Fprintln(w, "SLUG\tCONCURSO\tDATA\tDEZENAS\tEXTRAS\tPRÊMIO")
	for _, result := range report.Records {
		prize := p.ok.Sprint(result.Prize)
		if result.Prize == domain.RolloverPrize {
			prize = p.warning.Sprint(result.Prize)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			result.Slug, result.Concurso, result.Date, joinNumbers(result.Numbers), joinNumbers(result.Extras), prize)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	p.summary(report.Count, report.Failed, report.ElapsedMs)
	return nil
}

func (p *printer) Jackpots(report domain.JackpotsReport) error {
	if p.asJSON {
		return p.json(report)
	}

	w := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	p.header.Fprintln(w, "SLUG\tPRÊMIO\tPRÓXIMO SORTEIO")
	for _, jackpot := range report.Records {
		fmt.Fprintf(w, "%s\t%s\t%s\n", jackpot.Slug, p.ok.Sprint(jackpot.Jackpot), jackpot.NextDraw)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	p.summary(report.Count, report.Failed, report.ElapsedMs)
	return nil
}

func (p *printer) summary(count int, failed []string, elapsedMs int64) {
	fmt.Fprintln(p.out)
	p.ok.Fprintf(p.out, "%d loteria(s) em %d ms\n", count, elapsedMs)
	if len(failed) > 0 {
		p.failure.Fprintf(p.out, "Sem resposta: %s\n", strings.Join(failed, ", "))
	}
}

func (p *printer) json(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(p.out, string(data))
	return err
}

func source(s *registry.UpstreamSource) string {
	if s == nil {
		return "-"
	}
	return string(s.Provider) + ":" + s.UpstreamID
}

func joinNumbers(numbers []int) string {
	if len(numbers) == 0 {
		return "-"
	}
	parts := make([]string, len(numbers))
	for i, n := range numbers {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, " ")
}

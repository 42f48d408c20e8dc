package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/linuxmatters/chromafp/internal/audio"
	"github.com/linuxmatters/chromafp/internal/cli"
	"github.com/linuxmatters/chromafp/internal/fingerprint"
	"github.com/linuxmatters/chromafp/internal/logging"
	"github.com/linuxmatters/chromafp/internal/match"
	"github.com/linuxmatters/chromafp/internal/ui"
)

// version is set via ldflags at build time
// Local dev builds: "dev"
// Release builds: git tag (e.g. "0.1.0")
var version = "dev"

// feedChunk is the PCM block size fed to a Session per Feed call, chosen to
// give the progress UI reasonably granular updates without per-sample
// overhead.
const feedChunk = 1 << 16

// CLI defines the command-line interface.
type CLI struct {
	Version     bool           `short:"v" help:"Show version information"`
	Quiet       bool           `short:"q" help:"Skip the TUI; print plain text summaries"`
	Fingerprint FingerprintCmd `cmd:"" help:"Fingerprint one or more WAV files"`
	Match       MatchCmd       `cmd:"" help:"Compare two WAV files by acoustic fingerprint"`
}

// FingerprintCmd fingerprints one or more input files, optionally writing
// each one's encoded fingerprint to disk and a report alongside it.
type FingerprintCmd struct {
	Files  []string `arg:"" name:"files" help:"WAV files to fingerprint" type:"existingfile"`
	Output string   `short:"o" help:"Directory to write .fpcp fingerprint files into"`
	Logs   bool     `help:"Write a .log report alongside each fingerprint"`
}

// MatchCmd fingerprints two input files and reports the matching segments
// between them.
type MatchCmd struct {
	FileA     string  `arg:"" name:"a" help:"First WAV file" type:"existingfile"`
	FileB     string  `arg:"" name:"b" help:"Second WAV file" type:"existingfile"`
	Threshold float64 `help:"Maximum Hamming-distance score to report a segment" default:"10.0"`
	Seed      int64   `help:"Matcher RNG seed, for reproducible segment boundaries" default:"1"`
	Logs      bool    `help:"Write a .log match report next to the first file"`
}

func main() {
	cliArgs := &CLI{}
	ctx := kong.Parse(cliArgs,
		kong.Name("chromafp"),
		kong.Description("Acoustic audio fingerprinting and matching"),
		kong.UsageOnError(),
		kong.Vars{
			"version": version,
		},
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	)

	if cliArgs.Version {
		cli.PrintVersion(version)
		os.Exit(0)
	}

	var err error
	switch ctx.Command() {
	case "fingerprint <files>":
		err = runFingerprint(cliArgs.Fingerprint, cliArgs.Quiet)
	case "match <a> <b>":
		err = runMatch(cliArgs.Match, cliArgs.Quiet)
	default:
		ctx.PrintUsage(false)
		os.Exit(1)
	}

	if err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}
}

// fingerprintFile loads pcm, runs it through a Session, and reports progress
// via progress as a fraction of samples fed (0.0-1.0) and the running
// subfingerprint count.
func fingerprintFile(path string, progress func(frac float64, subfingerprints int)) (*audio.PCM, []uint32, error) {
	pcm, err := audio.ReadWAV(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}

	cfg := fingerprint.NewConfig(uint32(pcm.SampleRate), pcm.Channels)
	s := fingerprint.NewSession(cfg)

	total := len(pcm.Samples)
	for i := 0; i < total; i += feedChunk {
		end := i + feedChunk
		if end > total {
			end = total
		}
		s.Feed(pcm.Samples[i:end])
		if progress != nil {
			progress(float64(end)/float64(total), len(s.Fingerprint()))
		}
	}
	s.Finalize()

	return pcm, s.Fingerprint(), nil
}

func runFingerprint(cmd FingerprintCmd, quiet bool) error {
	if quiet || len(cmd.Files) > 1 {
		return runFingerprintBatch(cmd, quiet)
	}
	return runFingerprintSingle(cmd)
}

// runFingerprintBatch drives the queue-view Model, used whenever more than
// one file is given (or the TUI is suppressed).
func runFingerprintBatch(cmd FingerprintCmd, quiet bool) error {
	if quiet {
		for i, path := range cmd.Files {
			start := time.Now()
			pcm, fp, err := fingerprintFile(path, nil)
			if err != nil {
				cli.PrintError(err.Error())
				continue
			}
			durationSecs := float64(len(pcm.Samples)/pcm.Channels) / float64(pcm.SampleRate)
			cli.PrintFingerprintSummary(path, time.Duration(durationSecs*float64(time.Second)), len(fp))
			if err := writeOutputs(cmd, path, pcm, fp, durationSecs, start); err != nil {
				cli.PrintWarning(fmt.Sprintf("file %d: %v", i, err))
			}
		}
		return nil
	}

	model := ui.NewModel(cmd.Files)
	p := tea.NewProgram(model, tea.WithAltScreen())

	go func() {
		for i, path := range cmd.Files {
			start := time.Now()
			p.Send(ui.FileStartMsg{FileIndex: i, FileName: path})

			pcm, fp, err := fingerprintFile(path, func(frac float64, n int) {
				p.Send(ui.ProgressMsg{Progress: frac, Subfingerprints: n})
			})
			if err != nil {
				p.Send(ui.FileCompleteMsg{FileIndex: i, Error: err})
				continue
			}

			durationSecs := float64(len(pcm.Samples)/pcm.Channels) / float64(pcm.SampleRate)
			writeOutputs(cmd, path, pcm, fp, durationSecs, start)

			p.Send(ui.FileCompleteMsg{
				FileIndex:       i,
				Subfingerprints: len(fp),
				Duration:        durationSecs,
				OutputPath:      path,
			})
		}
		p.Send(ui.AllCompleteMsg{})
	}()

	_, err := p.Run()
	return err
}

// runFingerprintSingle drives the spinner AnalysisModel, used for the
// common case of fingerprinting exactly one file with the TUI enabled.
func runFingerprintSingle(cmd FingerprintCmd) error {
	path := cmd.Files[0]
	model := ui.NewAnalysisModel()
	p := tea.NewProgram(model)

	go func() {
		start := time.Now()
		p.Send(ui.AnalysisStartMsg{FileName: path, FilePath: path})

		pcm, fp, err := fingerprintFile(path, func(frac float64, n int) {
			p.Send(ui.AnalysisProgressMsg{Progress: frac, Subfingerprints: n})
		})
		if err != nil {
			p.Send(ui.AnalysisCompleteMsg{Error: err})
			return
		}

		durationSecs := float64(len(pcm.Samples)/pcm.Channels) / float64(pcm.SampleRate)
		writeOutputs(cmd, path, pcm, fp, durationSecs, start)

		p.Send(ui.AnalysisCompleteMsg{Subfingerprints: len(fp)})
	}()

	_, err := p.Run()
	return err
}

// writeOutputs writes the optional .fpcp fingerprint file and .log report
// for a single fingerprinted file.
func writeOutputs(cmd FingerprintCmd, path string, pcm *audio.PCM, fp []uint32, durationSecs float64, start time.Time) error {
	if cmd.Output == "" && !cmd.Logs {
		return nil
	}

	outPath := path + ".fpcp"
	if cmd.Output != "" {
		outPath = filepath.Join(cmd.Output, filepath.Base(path)+".fpcp")
		enc := fingerprint.EncodeFingerprint(fp, 0)
		if err := os.WriteFile(outPath, enc, 0644); err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}
	}

	if cmd.Logs {
		data := logging.ReportData{
			InputPath:       path,
			OutputPath:      outPath,
			StartTime:       start,
			EndTime:         time.Now(),
			SampleRate:      pcm.SampleRate,
			Channels:        pcm.Channels,
			DurationSecs:    durationSecs,
			Subfingerprints: len(fp),
		}
		if err := logging.GenerateReport(data); err != nil {
			return err
		}
	}
	return nil
}

func runMatch(cmd MatchCmd, quiet bool) error {
	start := time.Now()

	if quiet {
		_, fpA, err := fingerprintFile(cmd.FileA, nil)
		if err != nil {
			return err
		}
		_, fpB, err := fingerprintFile(cmd.FileB, nil)
		if err != nil {
			return err
		}
		segments := fingerprint.Match(fpA, fpB, cmd.Threshold, cmd.Seed)
		logging.DisplayMatchResult(os.Stdout, cmd.FileA, cmd.FileB, cmd.Threshold, segments)
		return maybeWriteMatchReport(cmd, start, segments)
	}

	model := ui.NewAnalysisModel()
	p := tea.NewProgram(model)

	var segments []match.Segment
	go func() {
		p.Send(ui.AnalysisStartMsg{FileName: cmd.FileA, FilePath: cmd.FileA})

		_, fpA, err := fingerprintFile(cmd.FileA, func(frac float64, n int) {
			p.Send(ui.AnalysisProgressMsg{Progress: frac * 0.5, Subfingerprints: n})
		})
		if err != nil {
			p.Send(ui.AnalysisCompleteMsg{Error: err})
			return
		}

		_, fpB, err := fingerprintFile(cmd.FileB, func(frac float64, n int) {
			p.Send(ui.AnalysisProgressMsg{Progress: 0.5 + frac*0.5, Subfingerprints: n})
		})
		if err != nil {
			p.Send(ui.AnalysisCompleteMsg{Error: err})
			return
		}

		segments = fingerprint.Match(fpA, fpB, cmd.Threshold, cmd.Seed)
		p.Send(ui.AnalysisCompleteMsg{Segments: segments})
	}()

	if _, err := p.Run(); err != nil {
		return err
	}

	return maybeWriteMatchReport(cmd, start, segments)
}

func maybeWriteMatchReport(cmd MatchCmd, start time.Time, segments []match.Segment) error {
	if !cmd.Logs {
		return nil
	}
	var best uint32
	for _, seg := range segments {
		if score := seg.PublicScore(); best == 0 || score < best {
			best = score
		}
	}
	data := logging.ReportData{
		InputPath:      cmd.FileA,
		OutputPath:     cmd.FileA,
		StartTime:      start,
		EndTime:        time.Now(),
		MatchAgainst:   cmd.FileB,
		MatchThreshold: cmd.Threshold,
		Segments:       segments,
	}
	return logging.GenerateReport(data)
}

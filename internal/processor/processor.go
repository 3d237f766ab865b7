package processor

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/chapter-flow/internal/chapters"
	"github.com/nguyentantai21042004/chapter-flow/internal/publish"
	"github.com/nguyentantai21042004/chapter-flow/internal/transcript"
)

// Process orchestrates the entire video processing pipeline
func (p *implProcessor) Process(ctx context.Context, videoPath string) Result {
	startTime := time.Now()
	res := Result{VideoPath: videoPath}

	p.logger.Info(ctx, "Starting video processing: %s", videoPath)

	res.Err = p.process(ctx, videoPath, &res)
	res.Duration = time.Since(startTime)

	var se *StageError
	if errors.As(res.Err, &se) {
		res.Kind = se.Kind
	}

	if res.Err != nil {
		p.logger.Error(ctx, "Failed %s after %s: %v", videoPath, res.Duration, res.Err)
		return res
	}
	p.logger.Info(ctx, "Finished %s in %s -> %s", videoPath, res.Duration, res.ChaptersPath)
	return res
}

func (p *implProcessor) process(ctx context.Context, videoPath string, res *Result) error {
	base := baseName(videoPath)

	// Step 1: Extract audio
	audioPath, err := p.extractor.Extract(ctx, videoPath)
	if err != nil {
		return stageErr(ExtractionError, "extract audio: %w", err)
	}
	defer p.cleanupTempFile(ctx, audioPath)

	// Step 2: Transcribe
	out, err := p.transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		return stageErr(TranscriptionError, "transcribe: %w", err)
	}

	// Step 3: Persist the raw transcript and parse it
	var (
		t       transcript.Transcript
		skipped []transcript.Skipped
	)
	if out.SRT != "" {
		res.TranscriptPath = filepath.Join(p.cfg.Paths.Transcripts, base+".srt")
		if err := publish.WriteFileAtomic(res.TranscriptPath, []byte(out.SRT)); err != nil {
			return stageErr(PersistenceError, "write transcript: %w", err)
		}
		t, skipped, err = transcript.ParseSRT(out.SRT)
	} else {
		res.TranscriptPath = filepath.Join(p.cfg.Paths.Transcripts, base+"_transcript.txt")
		if err := publish.WriteFileAtomic(res.TranscriptPath, []byte(rawSegments(out.Segments))); err != nil {
			return stageErr(PersistenceError, "write transcript: %w", err)
		}
		t, skipped, err = transcript.FromSegments(out.Segments)
	}
	for _, s := range skipped {
		p.logger.Warn(ctx, "Skipped transcript %s of %s", s, videoPath)
	}
	if err != nil {
		return stageErr(ParseError, "parse transcript: %w", err)
	}
	p.logger.Info(ctx, "Transcript ready: %d segments, %s to %s", len(t.Segments),
		transcript.FormatTimestamp(t.Start()), transcript.FormatTimestamp(t.End()))

	// Step 4: Infer chapters
	list, err := p.inferrer.Infer(ctx, t)
	if err != nil {
		return stageErr(InferenceError, "infer chapters: %w", err)
	}

	// Step 5: Publish
	chaptersPath := filepath.Join(p.cfg.Paths.Output, base+"_chapters.txt")
	if err := publish.WriteFileAtomic(chaptersPath, []byte(chapters.Format(list))); err != nil {
		return stageErr(PersistenceError, "write chapters: %w", err)
	}
	res.ChaptersPath = chaptersPath

	if p.cfg.Pipeline.Docx {
		docxPath := filepath.Join(p.cfg.Paths.Output, base+"_chapters.docx")
		if err := publish.WriteChaptersDocx(docxPath, base, list); err != nil {
			p.logger.Warn(ctx, "Failed to write chapter sheet %s: %v", docxPath, err)
		}
	}

	return nil
}

// rawSegments renders segments as the service returned them, one
// "seconds<TAB>text" line each, so even unusable output can be audited.
func rawSegments(segs []transcript.Segment) string {
	var sb strings.Builder
	for _, s := range segs {
		fmt.Fprintf(&sb, "%.3f\t%s\n", s.Start.Seconds(), strings.Join(strings.Fields(s.Text), " "))
	}
	return sb.String()
}

func baseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

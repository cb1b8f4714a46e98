package weld

import (
	"fmt"
	"os"

	"github.com/weldtool/weld/internal/logger"
)

// Options contains options for batch processing.
type Options struct {
	// RawLibraries disables preprocessing of included library fragments;
	// their bytes are copied through untouched.
	RawLibraries bool
}

// ProcessApps preprocesses every app in the manifest for target, in manifest
// order, and returns the number of files written. The first error aborts the
// remaining queue; outputs already written are left on disk.
func (w *Weld) ProcessApps(target string, opts *Options) (int, error) {
	return w.processJobs(w.appJobs(), target, opts)
}

// ProcessDrivers preprocesses every driver in the manifest for target, in
// manifest order, and returns the number of files written.
func (w *Weld) ProcessDrivers(target string, opts *Options) (int, error) {
	return w.processJobs(w.driverJobs(), target, opts)
}

// ProcessAll preprocesses the full manifest (apps first, then drivers) for
// target and returns the total number of files written.
func (w *Weld) ProcessAll(target string, opts *Options) (int, error) {
	appCount, err := w.ProcessApps(target, opts)
	if err != nil {
		return appCount, err
	}

	driverCount, err := w.ProcessDrivers(target, opts)
	return appCount + driverCount, err
}

// EnsureOutputDirectory creates the output directory if it doesn't exist.
func (w *Weld) EnsureOutputDirectory() error {
	if err := os.MkdirAll(w.GetOutputDir(), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// processJobs runs the given manifest entries strictly one at a time, each
// destination fully written and closed before the next file begins.
func (w *Weld) processJobs(jobs []Job, target string, opts *Options) (int, error) {
	if opts == nil {
		opts = &Options{}
	}

	if !w.HasTarget(target) {
		return 0, fmt.Errorf("unknown target %s", target)
	}

	if err := w.EnsureOutputDirectory(); err != nil {
		return 0, err
	}

	processed := 0
	for _, job := range jobs {
		logger.Info("Processing", "source", job.Source, "dest", job.Dest)
		if err := w.ProcessFile(job.Source, job.Dest, target, !opts.RawLibraries); err != nil {
			return processed, err
		}
		processed++
	}

	return processed, nil
}

func (w *Weld) appJobs() []Job {
	jobs := make([]Job, 0, len(w.config.Apps))
	for _, f := range w.config.Apps {
		jobs = append(jobs, Job{Kind: JobApp, Source: w.AppPath(f), Dest: w.OutputPath(f)})
	}
	return jobs
}

func (w *Weld) driverJobs() []Job {
	jobs := make([]Job, 0, len(w.config.Drivers))
	for _, f := range w.config.Drivers {
		jobs = append(jobs, Job{Kind: JobDriver, Source: w.DriverPath(f), Dest: w.OutputPath(f)})
	}
	return jobs
}

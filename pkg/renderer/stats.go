package renderer

import (
	"fmt"
	"image"
	"io"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/olekukonko/tablewriter"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels    int           // Total number of pixels rendered
	TotalSamples   int           // Total number of camera samples taken
	CameraRays     int64         // Primary rays traced
	ShadowRays     int64         // Shadow rays traced
	OccludedRays   int64         // Shadow rays that found an occluder
	ReflectionRays int64         // Reflection rays traced
	Misses         int64         // Non-shadow rays that left the scene
	Tiles          int           // Tiles rendered
	Workers        int           // Parallel workers used
	Duration       time.Duration // Wall clock render time
}

// Merge accumulates the per-tile counters of other into s
func (s *RenderStats) Merge(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.TotalSamples += other.TotalSamples
	s.CameraRays += other.CameraRays
	s.ShadowRays += other.ShadowRays
	s.OccludedRays += other.OccludedRays
	s.ReflectionRays += other.ReflectionRays
	s.Misses += other.Misses
	s.Tiles += other.Tiles
}

// addTrace folds integrator counters into the render statistics
func (s *RenderStats) addTrace(trace integrator.TraceStats) {
	s.CameraRays += trace.CameraRays
	s.ShadowRays += trace.ShadowRays
	s.OccludedRays += trace.OccludedRays
	s.ReflectionRays += trace.ReflectionRays
	s.Misses += trace.Misses
}

// AverageSamples returns the mean number of samples per pixel
func (s RenderStats) AverageSamples() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.TotalSamples) / float64(s.TotalPixels)
}

// TotalRays returns every ray traced: camera, shadow and reflection
func (s RenderStats) TotalRays() int64 {
	return s.CameraRays + s.ShadowRays + s.ReflectionRays
}

// WriteStatsTable renders the statistics as a text table
func WriteStatsTable(w io.Writer, stats RenderStats) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Counter", "Value"})
	table.AppendBulk([][]string{
		{"Pixels", fmt.Sprintf("%d", stats.TotalPixels)},
		{"Samples / pixel", fmt.Sprintf("%.2f", stats.AverageSamples())},
		{"Camera rays", fmt.Sprintf("%d", stats.CameraRays)},
		{"Shadow rays", fmt.Sprintf("%d", stats.ShadowRays)},
		{"Occluded", fmt.Sprintf("%d", stats.OccludedRays)},
		{"Reflection rays", fmt.Sprintf("%d", stats.ReflectionRays)},
		{"Misses", fmt.Sprintf("%d", stats.Misses)},
		{"Tiles", fmt.Sprintf("%d", stats.Tiles)},
		{"Workers", fmt.Sprintf("%d", stats.Workers)},
	})
	table.SetFooter([]string{"TOTAL", fmt.Sprintf("%d rays in %s", stats.TotalRays(), stats.Duration)})
	table.Render()
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of an image in [0,1]
func CalculateAverageLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	pixels := bounds.Dx() * bounds.Dy()
	if pixels == 0 {
		return 0
	}

	total := 0.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			// RGBA returns uint32 in [0, 65535], convert to [0, 1]
			total += core.NewVec3(float64(r)/65535.0, float64(g)/65535.0, float64(b)/65535.0).Luminance()
		}
	}
	return total / float64(pixels)
}

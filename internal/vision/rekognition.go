// Package vision adapts the external text-detection service. SDK results
// are converted into typed fragments at this boundary; nothing loosely
// typed crosses into the extractor.
package vision

import (
	"context"
	"errors"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"

	"github.com/le-kalmique/ringfit-challenge/internal/ocr"
)

// ErrNoText is returned when the service detects nothing in the image.
var ErrNoText = errors.New("no text detected in image")

// Detector runs text detection over an image payload.
type Detector interface {
	DetectText(ctx context.Context, image []byte) ([]ocr.Fragment, error)
}

// Rekognition is the AWS Rekognition DetectText implementation.
type Rekognition struct {
	client *rekognition.Client
}

// NewRekognition builds the Rekognition detector using ambient AWS
// credentials for the given region.
func NewRekognition(ctx context.Context, region string) (*Rekognition, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &Rekognition{client: rekognition.NewFromConfig(cfg)}, nil
}

// DetectText runs DetectText and returns the recognized fragments in the
// service's order. An empty detection is an error: the caller treats the
// photo as unreadable rather than producing an empty record.
func (r *Rekognition) DetectText(ctx context.Context, image []byte) ([]ocr.Fragment, error) {
	out, err := r.client.DetectText(ctx, &rekognition.DetectTextInput{
		Image: &types.Image{Bytes: image},
	})
	if err != nil {
		return nil, fmt.Errorf("detect text: %w", err)
	}

	fragments := make([]ocr.Fragment, 0, len(out.TextDetections))
	for _, det := range out.TextDetections {
		if det.DetectedText == nil {
			continue
		}
		f := ocr.Fragment{Text: *det.DetectedText}
		if det.Geometry != nil && det.Geometry.BoundingBox != nil {
			box := det.Geometry.BoundingBox
			f.Box = ocr.BoundingBox{
				Left:   float64(deref(box.Left)),
				Top:    float64(deref(box.Top)),
				Width:  float64(deref(box.Width)),
				Height: float64(deref(box.Height)),
			}
		}
		fragments = append(fragments, f)
	}
	if len(fragments) == 0 {
		return nil, ErrNoText
	}
	return fragments, nil
}

func deref(f *float32) float32 {
	if f == nil {
		return 0
	}
	return *f
}

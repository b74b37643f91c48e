// Package archive uploads report snapshots to S3-compatible storage on a cron schedule.
package archive

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"polar-backend/internal/config"
	"polar-backend/internal/metrics"
	"polar-backend/internal/services"
	"polar-backend/internal/timeutil"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// ObjectPutter is the slice of the S3 client the archiver needs
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type Archiver struct {
	client  ObjectPutter
	bucket  string
	reports *services.ReportService
	log     *zap.Logger
	now     func() time.Time
}

func NewArchiver(client ObjectPutter, bucket string, reports *services.ReportService, log *zap.Logger) *Archiver {
	return &Archiver{
		client:  client,
		bucket:  bucket,
		reports: reports,
		log:     log,
		now:     timeutil.Now,
	}
}

// NewS3Client builds a client for the configured endpoint (R2, MinIO or AWS)
func NewS3Client(ctx context.Context, cfg *config.Config) (*s3.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.Archive.AccessKey,
			cfg.Archive.SecretKey,
			"",
		)),
		awsconfig.WithRegion(cfg.Archive.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("configure archive client: %w", err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Archive.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Archive.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

type object struct {
	name        string
	contentType string
	render      func(ctx context.Context) ([]byte, error)
}

// Run uploads one snapshot: both CSV exports and the summary PDF under reports/<date>/<time>/
func (a *Archiver) Run(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	objects := []object{
		{"shipments.csv", "text/csv; charset=utf-8", func(context.Context) ([]byte, error) { return a.reports.ShipmentsCSV() }},
		{"equipment.csv", "text/csv; charset=utf-8", func(context.Context) ([]byte, error) { return a.reports.EquipmentCSV() }},
		{"summary.pdf", "application/pdf", a.reports.SummaryPDF},
	}

	now := a.now()
	prefix := fmt.Sprintf("reports/%s/%s", now.Format("2006-01-02"), now.Format("150405"))

	for _, obj := range objects {
		data, err := obj.render(ctx)
		if err != nil {
			metrics.ArchiveUploadsTotal.WithLabelValues("error").Inc()
			return fmt.Errorf("render %s: %w", obj.name, err)
		}

		key := prefix + "/" + obj.name
		_, err = a.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(a.bucket),
			Key:         aws.String(key),
			Body:        bytes.NewReader(data),
			ContentType: aws.String(obj.contentType),
		})
		if err != nil {
			metrics.ArchiveUploadsTotal.WithLabelValues("error").Inc()
			return fmt.Errorf("upload %s: %w", key, err)
		}

		metrics.ArchiveUploadsTotal.WithLabelValues("ok").Inc()
		a.log.Info("[Archive] uploaded", zap.String("key", key), zap.Int("bytes", len(data)))
	}
	return nil
}

// Schedule registers Run on spec and starts the cron runner. Stop the returned cron to end it.
func (a *Archiver) Schedule(ctx context.Context, spec string) (*cron.Cron, error) {
	c := cron.New(cron.WithLocation(timeutil.MSK))

	_, err := c.AddFunc(spec, func() {
		if err := a.Run(ctx); err != nil {
			a.log.Error("[Archive] snapshot failed", zap.Error(err))
		}
	})
	if err != nil {
		return nil, fmt.Errorf("archive schedule %q: %w", spec, err)
	}

	c.Start()
	a.log.Info("[Archive] scheduler started", zap.String("schedule", spec))
	return c, nil
}

package simulator

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/IBM/sarama"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/writer"

	"github.com/lunchsim/lunchsim/internal/cloudwriter"
	"github.com/lunchsim/lunchsim/internal/models"
)

const (
	TopicTruckDaily  = "truck_daily_results"
	TopicStudentDays = "student_day_records"
	TopicRunSummary  = "run_summary"
)

// OutputDestination receives serialized result records keyed by topic.
type OutputDestination interface {
	WriteMessage(topic string, msg []byte) error
	Close() error
}

type ConsoleOutput struct{}

func (c *ConsoleOutput) WriteMessage(topic string, msg []byte) error {
	_, err := fmt.Fprintf(os.Stdout, "[%s] %s\n", topic, string(msg))
	return err
}

func (c *ConsoleOutput) Close() error { return nil }

// JSONOutput appends newline-delimited JSON records to one file per topic.
type JSONOutput struct {
	basePath string
	folder   string
	files    map[string]*os.File
}

func NewJSONOutput(basePath, folder string) *JSONOutput {
	return &JSONOutput{
		basePath: basePath,
		folder:   folder,
		files:    make(map[string]*os.File),
	}
}

func (j *JSONOutput) WriteMessage(topic string, msg []byte) error {
	file, ok := j.files[topic]
	if !ok {
		dir := filepath.Join(j.basePath, j.folder)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output folder: %w", err)
		}
		f, err := os.Create(filepath.Join(dir, topic+".jsonl"))
		if err != nil {
			return fmt.Errorf("failed to create file for topic %s: %w", topic, err)
		}
		j.files[topic] = f
		file = f
	}

	if _, err := file.Write(append(msg, '\n')); err != nil {
		return fmt.Errorf("failed to write message to topic %s: %w", topic, err)
	}
	return nil
}

func (j *JSONOutput) Close() error {
	for _, f := range j.files {
		if err := f.Close(); err != nil {
			return err
		}
	}
	return nil
}

// CSVOutput writes one CSV file per topic, deriving the header from the
// first record's keys in sorted order.
type CSVOutput struct {
	basePath string
	folder   string
	files    map[string]*os.File
	writers  map[string]*csv.Writer
	headers  map[string][]string
}

func NewCSVOutput(basePath, folder string) *CSVOutput {
	return &CSVOutput{
		basePath: basePath,
		folder:   folder,
		files:    make(map[string]*os.File),
		writers:  make(map[string]*csv.Writer),
		headers:  make(map[string][]string),
	}
}

func (c *CSVOutput) WriteMessage(topic string, msg []byte) error {
	var record map[string]interface{}
	if err := json.Unmarshal(msg, &record); err != nil {
		return fmt.Errorf("failed to decode record for topic %s: %w", topic, err)
	}

	w, ok := c.writers[topic]
	if !ok {
		dir := filepath.Join(c.basePath, c.folder)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output folder: %w", err)
		}
		f, err := os.Create(filepath.Join(dir, topic+".csv"))
		if err != nil {
			return fmt.Errorf("failed to create file for topic %s: %w", topic, err)
		}
		c.files[topic] = f
		w = csv.NewWriter(f)
		c.writers[topic] = w

		headers := make([]string, 0, len(record))
		for key := range record {
			headers = append(headers, key)
		}
		sort.Strings(headers)
		c.headers[topic] = headers
		if err := w.Write(headers); err != nil {
			return err
		}
	}

	row := make([]string, len(c.headers[topic]))
	for i, key := range c.headers[topic] {
		switch v := record[key].(type) {
		case nil:
			row[i] = ""
		case string:
			row[i] = v
		case map[string]interface{}, []interface{}:
			nested, _ := json.Marshal(v)
			row[i] = string(nested)
		default:
			row[i] = fmt.Sprintf("%v", v)
		}
	}
	return w.Write(row)
}

func (c *CSVOutput) Close() error {
	for topic, w := range c.writers {
		w.Flush()
		if err := w.Error(); err != nil {
			return err
		}
		if err := c.files[topic].Close(); err != nil {
			return err
		}
	}
	return nil
}

// ParquetOutput writes the per-student day records as parquet, locally or to
// cloud storage; every other topic falls through to a JSON sidecar.
type ParquetOutput struct {
	basePath           string
	folder             string
	cloudWriterFactory cloudwriter.CloudWriterFactory
	cloudBucketName    string

	parquetFile   source.ParquetFile
	parquetWriter *writer.ParquetWriter
	sidecar       *JSONOutput
}

func NewParquetOutput(config *models.Config) (*ParquetOutput, error) {
	p := &ParquetOutput{
		basePath: config.OutputPath,
		folder:   config.OutputFolder,
		sidecar:  NewJSONOutput(config.OutputPath, config.OutputFolder),
	}
	if config.CloudStorage == "s3" {
		factory, err := cloudwriter.NewS3WriterFactory(config.CloudRegion)
		if err != nil {
			return nil, fmt.Errorf("failed to create cloud writer factory: %w", err)
		}
		p.cloudWriterFactory = factory
		p.cloudBucketName = config.CloudBucketName
	}
	return p, nil
}

func (p *ParquetOutput) WriteMessage(topic string, msg []byte) error {
	if topic != TopicStudentDays {
		return p.sidecar.WriteMessage(topic, msg)
	}

	if p.parquetWriter == nil {
		if err := p.openWriter(); err != nil {
			return err
		}
	}

	var record models.StudentDayRecord
	if err := json.Unmarshal(msg, &record); err != nil {
		return fmt.Errorf("failed to decode student day record: %w", err)
	}
	return p.parquetWriter.Write(record)
}

func (p *ParquetOutput) openWriter() error {
	objectName := fmt.Sprintf("%s_%s.parquet", TopicStudentDays, time.Now().UTC().Format("20060102T150405"))

	var file source.ParquetFile
	if p.cloudWriterFactory != nil {
		cw, err := p.cloudWriterFactory.NewWriter(p.cloudBucketName, filepath.Join(p.folder, objectName))
		if err != nil {
			return fmt.Errorf("failed to create cloud writer: %w", err)
		}
		file = cloudwriter.NewParquetFile(cw)
	} else {
		dir := filepath.Join(p.basePath, p.folder)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output folder: %w", err)
		}
		f, err := local.NewLocalFileWriter(filepath.Join(dir, objectName))
		if err != nil {
			return fmt.Errorf("failed to create parquet file: %w", err)
		}
		file = f
	}

	pw, err := writer.NewParquetWriter(file, new(models.StudentDayRecord), 4)
	if err != nil {
		return fmt.Errorf("failed to create parquet writer: %w", err)
	}
	p.parquetFile = file
	p.parquetWriter = pw
	return nil
}

func (p *ParquetOutput) Close() error {
	if p.parquetWriter != nil {
		if err := p.parquetWriter.WriteStop(); err != nil {
			return fmt.Errorf("failed to finalize parquet file: %w", err)
		}
		if err := p.parquetFile.Close(); err != nil {
			return err
		}
	}
	return p.sidecar.Close()
}

// KafkaOutput streams result records to Kafka topics.
type KafkaOutput struct {
	producer sarama.SyncProducer
}

func (k *KafkaOutput) WriteMessage(topic string, msg []byte) error {
	if k.producer == nil {
		return fmt.Errorf("kafka producer is closed")
	}
	_, _, err := k.producer.SendMessage(&sarama.ProducerMessage{
		Topic: topic,
		Value: sarama.ByteEncoder(msg),
	})
	return err
}

func (k *KafkaOutput) Close() error {
	if k.producer == nil {
		return nil
	}
	err := k.producer.Close()
	k.producer = nil
	return err
}

func createKafkaProducer(brokerList []string) (sarama.SyncProducer, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Retry.Backoff = 100 * time.Millisecond
	config.Producer.Return.Successes = true
	config.Net.DialTimeout = 30 * time.Second
	config.Net.ReadTimeout = 30 * time.Second
	config.Net.WriteTimeout = 30 * time.Second

	producer, err := sarama.NewSyncProducer(brokerList, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}
	return producer, nil
}

// DetermineOutputDestination picks the sink from configuration: Kafka when
// enabled, otherwise the configured file format, otherwise the console.
func DetermineOutputDestination(config *models.Config) (OutputDestination, error) {
	if config.KafkaEnabled {
		producer, err := createKafkaProducer(strings.Split(config.KafkaBrokerList, ","))
		if err != nil {
			return nil, err
		}
		return &KafkaOutput{producer: producer}, nil
	}

	switch config.OutputFormat {
	case "json":
		return NewJSONOutput(config.OutputPath, config.OutputFolder), nil
	case "csv":
		return NewCSVOutput(config.OutputPath, config.OutputFolder), nil
	case "parquet":
		return NewParquetOutput(config)
	case "", "console":
		return &ConsoleOutput{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", config.OutputFormat)
	}
}

// PublishResults serializes the run's records to the destination: one flat
// row per truck per day, one row per student per day, and the run summary.
func PublishResults(result *models.RunResult, out OutputDestination) error {
	for _, daily := range result.DailyResults {
		for _, truckName := range result.TruckOrder {
			tr := daily.TruckResults[truckName]
			record := map[string]interface{}{
				"day":       daily.Day,
				"truck":     tr.TruckName,
				"revenue":   tr.Revenue,
				"customers": tr.Customers,
			}
			msg, err := json.Marshal(record)
			if err != nil {
				return err
			}
			if err := out.WriteMessage(TopicTruckDaily, msg); err != nil {
				return err
			}
		}

		for _, state := range daily.StudentStates {
			msg, err := json.Marshal(state)
			if err != nil {
				return err
			}
			if err := out.WriteMessage(TopicStudentDays, msg); err != nil {
				return err
			}
		}
	}

	summary := *result
	summary.DailyResults = nil
	msg, err := json.Marshal(&summary)
	if err != nil {
		return err
	}
	return out.WriteMessage(TopicRunSummary, msg)
}

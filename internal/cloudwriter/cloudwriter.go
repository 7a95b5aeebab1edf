package cloudwriter

import (
	"fmt"

	"github.com/xitongsys/parquet-go/source"
)

// CloudWriter is a write-only object target; the upload happens on Close.
type CloudWriter interface {
	Write(data []byte) (int, error)
	Close() error
}

// CloudWriterFactory creates writers bound to a bucket and object path.
type CloudWriterFactory interface {
	NewWriter(bucket, objectPath string) (CloudWriter, error)
}

// ParquetFile adapts a CloudWriter to the parquet source interface. Cloud
// objects are written in one sequential pass, so reads and backward seeks
// are unsupported.
type ParquetFile struct {
	cloudWriter CloudWriter
	offset      int64
}

func NewParquetFile(cw CloudWriter) *ParquetFile {
	return &ParquetFile{cloudWriter: cw}
}

// Open returns the file itself: a cloud object needs no open step.
func (p *ParquetFile) Open(name string) (source.ParquetFile, error) {
	return p, nil
}

// Create returns the file itself: the object comes into being on upload.
func (p *ParquetFile) Create(name string) (source.ParquetFile, error) {
	return p, nil
}

func (p *ParquetFile) Write(data []byte) (int, error) {
	n, err := p.cloudWriter.Write(data)
	p.offset += int64(n)
	return n, err
}

func (p *ParquetFile) Read(_ []byte) (int, error) {
	return 0, fmt.Errorf("cloud parquet file is write-only")
}

func (p *ParquetFile) Seek(offset int64, whence int) (int64, error) {
	// The parquet writer only seeks to query the current position.
	if whence == 1 && offset == 0 {
		return p.offset, nil
	}
	return 0, fmt.Errorf("cloud parquet file does not support seeking")
}

func (p *ParquetFile) Close() error {
	return p.cloudWriter.Close()
}

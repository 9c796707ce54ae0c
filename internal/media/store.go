package media

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/puneethk/portfolio-backend/internal/telemetry/tracing"
)

var ErrMediaNotFound = errors.New("media file not found")

const indexFileName = "media-index.json"

type File struct {
	Id        int64     `json:"id"`
	Name      string    `json:"name"`
	Path      string    `json:"path"`
	Type      string    `json:"type"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

// NewId returns a simple unix time in micro,
// fair enough for a single-admin media folder
func NewId() int64 {
	return time.Now().UnixMicro()
}

// DiskStore keeps uploaded media in a single flat folder on disk, with
// a JSON index next to the files.
type DiskStore struct {
	rootPath string
	files    map[int64]*File
	mutex    sync.RWMutex
}

func NewDiskStore(rootPath string) (*DiskStore, error) {
	if rootPath == "" {
		return nil, errors.New("root path cannot be empty")
	}

	if err := os.MkdirAll(rootPath, 0o755); err != nil {
		return nil, fmt.Errorf("create media root: %w", err)
	}

	files, err := loadIndex(rootPath)
	if err != nil {
		return nil, fmt.Errorf("load media index: %w", err)
	}

	return &DiskStore{
		rootPath: rootPath,
		files:    files,
	}, nil
}

func loadIndex(rootPath string) (map[int64]*File, error) {
	indexPath := path.Join(rootPath, indexFileName)
	indexBytes, err := os.ReadFile(indexPath)
	if errors.Is(err, os.ErrNotExist) {
		return make(map[int64]*File), nil
	}
	if err != nil {
		return nil, err
	}

	var files map[int64]*File
	if err := json.Unmarshal(indexBytes, &files); err != nil {
		return nil, fmt.Errorf("unmarshal index: %w", err)
	}
	if files == nil {
		files = make(map[int64]*File)
	}

	log.Debugf("media store: %d files indexed in %s", len(files), rootPath)

	return files, nil
}

// saveIndex persists the index; callers hold the write lock.
func (ds *DiskStore) saveIndex() error {
	indexBytes, err := json.Marshal(ds.files)
	if err != nil {
		return fmt.Errorf("marshal index: %w", err)
	}
	return os.WriteFile(path.Join(ds.rootPath, indexFileName), indexBytes, 0o644)
}

type SaveFileParams struct {
	Filename string
	Size     int64
	FileType string
	File     io.Reader
}

func (ds *DiskStore) Save(ctx context.Context, params SaveFileParams) (_ int64, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "mediaStore.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	span.SetAttributes(attribute.String("file.name", params.Filename))
	span.SetAttributes(attribute.Int64("file.size", params.Size))

	if params.Filename == "" {
		return -1, errors.New("filename empty")
	}

	newId := NewId()
	newFilePath := path.Join(ds.rootPath, fmt.Sprintf("%d_%s", newId, path.Base(params.Filename)))

	dst, err := os.Create(newFilePath)
	if err != nil {
		return -1, err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, params.File); err != nil {
		return -1, err
	}

	ds.mutex.Lock()
	defer ds.mutex.Unlock()

	ds.files[newId] = &File{
		Id:        newId,
		Name:      params.Filename,
		Path:      newFilePath,
		Type:      params.FileType,
		Size:      params.Size,
		CreatedAt: time.Now(),
	}

	if err := ds.saveIndex(); err != nil {
		return -1, err
	}

	log.Debugf("media store: saved file [%d]: %s", newId, params.Filename)

	return newId, nil
}

func (ds *DiskStore) Get(ctx context.Context, id int64) (*File, error) {
	_, span := tracing.GlobalTracer.Start(ctx, "mediaStore.get")
	defer span.End()

	ds.mutex.RLock()
	defer ds.mutex.RUnlock()

	file, ok := ds.files[id]
	if !ok {
		return nil, ErrMediaNotFound
	}

	return file, nil
}

func (ds *DiskStore) Delete(ctx context.Context, id int64) error {
	_, span := tracing.GlobalTracer.Start(ctx, "mediaStore.delete")
	defer span.End()

	ds.mutex.Lock()
	defer ds.mutex.Unlock()

	file, ok := ds.files[id]
	if !ok {
		return ErrMediaNotFound
	}

	if err := os.Remove(file.Path); err != nil {
		return fmt.Errorf("remove file [%d]: %w", id, err)
	}

	delete(ds.files, id)

	return ds.saveIndex()
}

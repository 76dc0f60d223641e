package transcript

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Store 管理单个目录下的记录文件，每条记录一个 <id>.json。
type Store struct {
	Dir string
}

func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".rill", "transcripts"), nil
}

func NewDefault() (*Store, error) {
	dir, err := DefaultDir()
	if err != nil {
		return nil, err
	}
	return &Store{Dir: dir}, nil
}

func (s *Store) ensureDir() error {
	if s == nil || strings.TrimSpace(s.Dir) == "" {
		return errors.New("transcript store dir is empty")
	}
	return os.MkdirAll(s.Dir, 0o755)
}

// Save 落盘一条记录。ID 为空时报错，由构造方负责生成。
func (s *Store) Save(rec Record) error {
	if s == nil {
		return errors.New("transcript store is nil")
	}
	if strings.TrimSpace(rec.ID) == "" {
		return errors.New("record has no id")
	}
	if err := s.ensureDir(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.Dir, rec.ID+".json"), data, 0o644)
}

// Load 按 ID 或唯一前缀读取一条记录。
func (s *Store) Load(idOrPrefix string) (Record, error) {
	if s == nil {
		return Record{}, errors.New("transcript store is nil")
	}
	idOrPrefix = strings.TrimSpace(idOrPrefix)
	if idOrPrefix == "" {
		return Record{}, errors.New("record id is empty")
	}
	recs, err := s.loadAll()
	if err != nil {
		return Record{}, err
	}
	var match *Record
	for i := range recs {
		if recs[i].ID == idOrPrefix {
			return recs[i], nil
		}
		if strings.HasPrefix(recs[i].ID, idOrPrefix) {
			if match != nil {
				return Record{}, errors.New("ambiguous record id prefix: " + idOrPrefix)
			}
			match = &recs[i]
		}
	}
	if match == nil {
		return Record{}, errors.New("no record matches id: " + idOrPrefix)
	}
	return *match, nil
}

// Last 返回最近创建的记录。
func (s *Store) Last() (Record, error) {
	recs, err := s.List("")
	if err != nil {
		return Record{}, err
	}
	if len(recs) == 0 {
		return Record{}, errors.New("transcript store is empty")
	}
	return recs[0], nil
}

// List 返回按创建时间倒序排列的记录。query 非空时按标题做模糊匹配，
// 命中顺序按匹配得分排列。
func (s *Store) List(query string) ([]Record, error) {
	recs, err := s.loadAll()
	if err != nil {
		return nil, err
	}
	sort.Slice(recs, func(i, j int) bool {
		return recs[i].CreatedAt.After(recs[j].CreatedAt)
	})
	query = strings.TrimSpace(query)
	if query == "" {
		return recs, nil
	}
	titles := make([]string, 0, len(recs))
	for _, r := range recs {
		titles = append(titles, r.Title)
	}
	matches := fuzzy.Find(query, titles)
	out := make([]Record, 0, len(matches))
	for _, m := range matches {
		out = append(out, recs[m.Index])
	}
	return out, nil
}

func (s *Store) loadAll() ([]Record, error) {
	if s == nil {
		return nil, errors.New("transcript store is nil")
	}
	if strings.TrimSpace(s.Dir) == "" {
		return nil, errors.New("transcript store dir is empty")
	}
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var out []Record
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.Dir, e.Name()))
		if err != nil {
			continue
		}
		var rec Record
		if err := json.Unmarshal(data, &rec); err != nil {
			// 坏文件跳过，不影响其余记录。
			continue
		}
		if strings.TrimSpace(rec.ID) == "" {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

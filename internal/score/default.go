package score

import (
	"database/sql"
	"encoding/json"
	"log"
	"time"

	"github.com/klauspost/compress/zstd"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	"git.lost.host/meutraa/dreamdirect/internal/game"
)

const DefaultPath = "./dreamdirect.db"

type DefaultScorer struct {
	// Database file, DefaultPath when empty
	Path string
	Log  *log.Logger

	db  *sql.DB
	enc *zstd.Encoder
	dec *zstd.Decoder
}

func (s *DefaultScorer) Init() error {
	if s.Path == "" {
		s.Path = DefaultPath
	}
	if nil == s.Log {
		s.Log = log.Default()
	}

	db, err := sql.Open("sqlite3", s.Path)
	if err != nil {
		return errors.Wrapf(err, "open %s", s.Path)
	}

	initStatement := `
	create table if not exists runs
	  (
		  id integer not null primary key,
		  level integer not null,
		  seed integer,
		  played_at integer,
		  score integer,
		  stars integer,
		  summary text,
		  inputs blob,
		  tutorials text
	  );
	create index if not exists runs_level on runs (level, score);
	create table if not exists tutorials
	  (
		  type text not null primary key
	  );
	`
	if _, err = db.Exec(initStatement); nil != err {
		db.Close()
		return errors.Wrap(err, "create tables")
	}

	if err = migrate(db); nil != err {
		db.Close()
		return err
	}

	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if nil != err {
		db.Close()
		return errors.Wrap(err, "zstd writer")
	}
	dec, err := zstd.NewReader(nil)
	if nil != err {
		db.Close()
		enc.Close()
		return errors.Wrap(err, "zstd reader")
	}

	s.db, s.enc, s.dec = db, enc, dec
	return nil
}

// migrate adds columns missing from databases created by older versions.
func migrate(db *sql.DB) error {
	rows, err := db.Query("pragma table_info(runs)")
	if nil != err {
		return errors.Wrap(err, "read runs columns")
	}
	columns := map[string]bool{}
	for rows.Next() {
		var (
			cid, notNull, pk int
			name, kind       string
			def              sql.NullString
		)
		if err := rows.Scan(&cid, &name, &kind, &notNull, &def, &pk); nil != err {
			rows.Close()
			return errors.Wrap(err, "scan runs columns")
		}
		columns[name] = true
	}
	rows.Close()

	if !columns["tutorials"] {
		if _, err := db.Exec("alter table runs add column tutorials text"); nil != err {
			return errors.Wrap(err, "add runs.tutorials")
		}
	}
	return nil
}

func (s *DefaultScorer) Deinit() {
	if nil != s.db {
		s.db.Close()
	}
	if nil != s.enc {
		s.enc.Close()
	}
	if nil != s.dec {
		s.dec.Close()
	}
}

func (s *DefaultScorer) Save(run Run) error {
	summary, err := json.Marshal(run.Summary)
	if nil != err {
		return errors.Wrap(err, "marshal summary")
	}
	data, err := json.Marshal(compactInputs(run.Inputs))
	if nil != err {
		return errors.Wrap(err, "marshal inputs")
	}
	var tutorials sql.NullString
	if nil != run.Tutorials {
		b, err := json.Marshal(run.Tutorials)
		if nil != err {
			return errors.Wrap(err, "marshal tutorials")
		}
		tutorials = sql.NullString{String: string(b), Valid: true}
	}
	if run.PlayedAt.IsZero() {
		run.PlayedAt = time.Now()
	}

	_, err = s.db.Exec(
		"insert into runs(level, seed, played_at, score, stars, summary, inputs, tutorials) values(?, ?, ?, ?, ?, ?, ?, ?)",
		run.Summary.Level, run.Seed, run.PlayedAt.UnixMilli(), run.Summary.Score, run.Summary.Stars,
		string(summary), s.enc.EncodeAll(data, nil), tutorials,
	)
	if nil != err {
		return errors.Wrapf(err, "save level %d", run.Summary.Level)
	}
	return nil
}

func (s *DefaultScorer) Load(level int) []History {
	rows, err := s.db.Query("select id, seed, played_at, summary, inputs, tutorials from runs where level = ? order by played_at, id", level)
	if nil != err {
		s.Log.Println("unable to load runs", err)
		return []History{}
	}
	defer rows.Close()
	return s.scan(rows)
}

func (s *DefaultScorer) Best(level int) (History, bool) {
	rows, err := s.db.Query("select id, seed, played_at, summary, inputs, tutorials from runs where level = ? order by score desc, played_at limit 1", level)
	if nil != err {
		s.Log.Println("unable to load best run", err)
		return History{}, false
	}
	defer rows.Close()
	histories := s.scan(rows)
	if len(histories) == 0 {
		return History{}, false
	}
	return histories[0], true
}

func (s *DefaultScorer) scan(rows *sql.Rows) []History {
	histories := []History{}
	for rows.Next() {
		var h History
		var playedAt int64
		var summary string
		var inputs []byte
		var tutorials sql.NullString
		if err := rows.Scan(&h.ID, &h.Seed, &playedAt, &summary, &inputs, &tutorials); nil != err {
			s.Log.Println("unable to scan run", err)
			continue
		}
		if err := json.Unmarshal([]byte(summary), &h.Summary); nil != err {
			s.Log.Println("unable to unmarshal summary of run", h.ID, err)
			continue
		}
		data, err := s.dec.DecodeAll(inputs, nil)
		if nil != err {
			s.Log.Println("unable to decompress inputs of run", h.ID, err)
			continue
		}
		var ins []InputsCompact
		if err := json.Unmarshal(data, &ins); nil != err {
			s.Log.Println("unable to unmarshal inputs of run", h.ID, err)
			continue
		}
		if tutorials.Valid {
			h.Tutorials = []game.ArrowType{}
			if err := json.Unmarshal([]byte(tutorials.String), &h.Tutorials); nil != err {
				s.Log.Println("unable to unmarshal tutorials of run", h.ID, err)
				continue
			}
		}
		h.PlayedAt = time.UnixMilli(playedAt)
		h.Inputs = uncompactInputs(ins)
		histories = append(histories, h)
	}
	return histories
}

func (s *DefaultScorer) Introduced() []game.ArrowType {
	types := []game.ArrowType{}
	rows, err := s.db.Query("select type from tutorials")
	if nil != err {
		s.Log.Println("unable to load tutorials", err)
		return types
	}
	defer rows.Close()
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); nil != err {
			continue
		}
		t, err := game.ParseArrowType(name)
		if nil != err {
			s.Log.Println("ignoring unknown tutorial", name)
			continue
		}
		types = append(types, t)
	}
	return types
}

func (s *DefaultScorer) Introduce(types ...game.ArrowType) error {
	for _, t := range types {
		if _, err := s.db.Exec("insert or ignore into tutorials(type) values(?)", t.String()); nil != err {
			return errors.Wrapf(err, "save tutorial %v", t)
		}
	}
	return nil
}

package lib

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/blevesearch/bleve"
	"github.com/boltdb/bolt"
	"github.com/xuri/excelize/v2"
)

/*
	MPN	Series	Family	Package	Value	Description	Datasheet
	RC0402FR-0710KL	RC0402	resistor	0402	10 kOhm	Thick film chip resistor	https://...
*/

var (
	PARTS_BKT     = []byte("parts")
	UNINDEXED_BKT = []byte("unindexed")
)

type LibraryPart struct {
	MPN         string
	Series      string
	Family      string
	Package     string
	Value       string
	Description string
	Datasheet   string
}

type Library struct {
	root  string
	db    *bolt.DB
	index bleve.Index
}

/*
	Create or open library from root
*/
func NewLibrary(root string) (*Library, error) {
	db, err := bolt.Open(filepath.Join(root, "klib.db"), 0777, nil)
	if err != nil {
		return nil, err
	}

	db.Update(func(tx *bolt.Tx) error {
		tx.CreateBucketIfNotExists(PARTS_BKT)
		tx.CreateBucketIfNotExists(UNINDEXED_BKT)

		return nil
	})

	var index bleve.Index
	ipath := filepath.Join(root, "klib.index")
	if Exists(ipath) {
		index, err = bleve.Open(ipath)
	} else {
		index, err = bleve.New(ipath, bleve.NewIndexMapping())
	}
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Library{
		root:  root,
		db:    db,
		index: index,
	}, nil
}

func NewDefaultLibrary() (*Library, error) {
	root := filepath.Join(GetLocalAppData(), "klib")
	if err := os.MkdirAll(root, 0777); err != nil {
		return nil, err
	}
	return NewLibrary(root)
}

func (l *Library) Close() error {
	l.index.Close()
	return l.db.Close()
}

/*
	Import a part table from an excel file. Rows stream through a
	channel into fixed-size bolt transactions to bound memory on large
	vendor tables. Imported parts land in the unindexed bucket until
	IndexPending folds them into the search index.
*/
func (l *Library) Import(src string) error {
	f, err := excelize.OpenFile(src)
	if err != nil {
		return err
	}
	defer f.Close()

	sheet := f.GetSheetList()[0]
	rows, err := f.Rows(sheet)
	if err != nil {
		return err
	}

	chrows := make(chan []string, 100)
	go func() {
		header := true
		for {
			if end := !rows.Next(); end {
				chrows <- []string{}

				return
			}

			row, err := rows.Columns()
			if err != nil {
				continue
			}

			if header {
				header = false
				continue
			}

			if len(row) < 4 {
				continue
			}

			chrows <- row
		}
	}()

	/*
		amount per transaction
	*/
	k := 2000
	done := false
	for !done {
		if err := l.db.Update(func(tx *bolt.Tx) error {
			parts := tx.Bucket(PARTS_BKT)
			unindexed := tx.Bucket(UNINDEXED_BKT)
			row := []string{}
			for j := 0; j < k; j++ {
				if row = <-chrows; len(row) == 0 {
					/*
						commit the partial batch
					*/
					done = true
					return nil
				}

				part := partFromRow(row)
				if part.MPN == "" {
					continue
				}

				bytes, err := Marshal(part)
				if err != nil {
					return err
				}

				if err := parts.Put([]byte(part.MPN), bytes); err != nil {
					return err
				}

				/*
					mpns are removed from unindexed once they are indexed
				*/
				if err := unindexed.Put([]byte(part.MPN), []byte("")); err != nil {
					return err
				}
			}

			return nil
		}); err != nil {
			return err
		}
	}

	return nil
}

func partFromRow(row []string) LibraryPart {
	get := func(i int) string {
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	return LibraryPart{
		MPN:         get(0),
		Series:      get(1),
		Family:      get(2),
		Package:     get(3),
		Value:       get(4),
		Description: get(5),
		Datasheet:   get(6),
	}
}

func (l *Library) Put(part LibraryPart) error {
	bytes, err := Marshal(part)
	if err != nil {
		return err
	}

	return l.db.Update(func(tx *bolt.Tx) error {
		if err := tx.Bucket(PARTS_BKT).Put([]byte(part.MPN), bytes); err != nil {
			return err
		}
		return tx.Bucket(UNINDEXED_BKT).Put([]byte(part.MPN), []byte(""))
	})
}

func (l *Library) Get(mpn string) (*LibraryPart, error) {
	part := &LibraryPart{}
	err := l.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(PARTS_BKT).Get([]byte(mpn))
		if data == nil {
			return fmt.Errorf("no part with mpn %q", mpn)
		}
		return Unmarshal(data, part)
	})
	if err != nil {
		return nil, err
	}

	return part, nil
}

func (l *Library) All() ([]*LibraryPart, error) {
	parts := []*LibraryPart{}
	err := l.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(PARTS_BKT).ForEach(func(k, v []byte) error {
			part := &LibraryPart{}
			if err := Unmarshal(v, part); err != nil {
				return err
			}
			parts = append(parts, part)

			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return parts, nil
}

/*
	IndexPending drains the unindexed bucket into the search index and
	reports how many parts it folded in.
*/
func (l *Library) IndexPending() (int, error) {
	pending := []string{}
	err := l.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(UNINDEXED_BKT).ForEach(func(k, v []byte) error {
			pending = append(pending, string(k))

			return nil
		})
	})
	if err != nil {
		return 0, err
	}

	indexed := 0
	for _, mpn := range pending {
		part, err := l.Get(mpn)
		if err != nil {
			continue
		}

		if err := l.index.Index(mpn, *part); err != nil {
			return indexed, err
		}
		indexed++
	}

	return indexed, l.db.Update(func(tx *bolt.Tx) error {
		bkt := tx.Bucket(UNINDEXED_BKT)
		for _, mpn := range pending {
			if err := bkt.Delete([]byte(mpn)); err != nil {
				return err
			}
		}

		return nil
	})
}

/*
	Find library parts, given a search string
*/
func (l *Library) Find(text string) []*LibraryPart {
	query := bleve.NewMatchQuery(text)

	request := bleve.NewSearchRequest(query)
	request.Size = 25
	result, err := l.index.Search(request)
	if err != nil {
		return []*LibraryPart{}
	}

	parts := []*LibraryPart{}
	for _, hit := range result.Hits {
		part, err := l.Get(hit.ID)
		if err != nil {
			continue
		}

		parts = append(parts, part)
	}

	return parts
}

/*
	Export the part table to an excel file
*/
func (l *Library) Export(dst string) error {
	parts, err := l.All()
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	f.NewSheet(string(PARTS_BKT))
	f.DeleteSheet("Sheet1")

	f.SetSheetRow(string(PARTS_BKT), "A1", &[]interface{}{
		"MPN", "Series", "Family", "Package", "Value", "Description", "Datasheet",
	})
	for i, part := range parts {
		f.SetSheetRow(
			string(PARTS_BKT), fmt.Sprintf("A%d", i+2), &[]interface{}{
				part.MPN, part.Series, part.Family, part.Package,
				part.Value, part.Description, part.Datasheet,
			},
		)
	}

	return f.SaveAs(dst)
}

package model

// TypePage holds at most MaxPageEntries type descriptors.
type TypePage struct {
	Types []*TypeDescriptor
}

func NewTypePage() *TypePage {
	return &TypePage{Types: make([]*TypeDescriptor, 0, MaxPageEntries)}
}

func (tp *TypePage) Len() int {
	return len(tp.Types)
}

func (tp *TypePage) IsFull() bool {
	return len(tp.Types) >= MaxPageEntries
}

// Add appends td, it returns false and leaves the page untouched when the page is full.
func (tp *TypePage) Add(td *TypeDescriptor) bool {
	if tp.IsFull() {
		return false
	}
	tp.Types = append(tp.Types, td)
	return true
}

func (tp *TypePage) Search(name string) *TypeDescriptor {
	if i := tp.find(name); i >= 0 {
		return tp.Types[i]
	}
	return nil
}

func (tp *TypePage) Delete(name string) bool {
	i := tp.find(name)
	if i < 0 {
		return false
	}
	tp.Types = append(tp.Types[:i], tp.Types[i+1:]...)
	return true
}

func (tp *TypePage) find(name string) int {
	for i, td := range tp.Types {
		if td.Name == name {
			return i
		}
	}
	return -1
}

// RecordPage holds at most MaxPageEntries live records.
type RecordPage struct {
	Records []*Record
}

func NewRecordPage() *RecordPage {
	return &RecordPage{Records: make([]*Record, 0, MaxPageEntries)}
}

func (rp *RecordPage) Len() int {
	return len(rp.Records)
}

func (rp *RecordPage) IsFull() bool {
	return len(rp.Records) >= MaxPageEntries
}

// Add appends r, it returns false and leaves the page untouched when the page is full.
func (rp *RecordPage) Add(r *Record) bool {
	if rp.IsFull() {
		return false
	}
	rp.Records = append(rp.Records, r)
	return true
}

func (rp *RecordPage) Search(key int64) *Record {
	if i := rp.find(key); i >= 0 {
		return rp.Records[i]
	}
	return nil
}

func (rp *RecordPage) Delete(key int64) bool {
	i := rp.find(key)
	if i < 0 {
		return false
	}
	rp.Records = append(rp.Records[:i], rp.Records[i+1:]...)
	return true
}

func (rp *RecordPage) find(key int64) int {
	for i, r := range rp.Records {
		if r.IsValid && r.Key == key {
			return i
		}
	}
	return -1
}

package domain

// Catalog is the immutable question catalog. It is loaded once per process
// and shared read-only; nothing mutates it after construction.
type Catalog struct {
	Parts []Part
}

// Part is a top-level grouping: either an exhaustive pattern library or an
// interview-filter subset referencing one of the libraries.
type Part struct {
	Name     string
	Sections []Section
}

// Section is a named grouping within a part. A flat section carries question
// titles directly; a nested section carries subcategories. The shape is fixed
// for the section's lifetime; a section with neither is empty and contributes
// nothing to any count.
type Section struct {
	Name          string
	Questions     []string
	Subcategories []Subcategory
}

// Subcategory is a named question list within a nested section. In filter
// parts the emphasis ("DO") buckets are subcategories whose questions are
// topic phrases rather than literal titles.
type Subcategory struct {
	Name      string
	Questions []string
}

// Flat reports whether the section carries questions directly.
func (s *Section) Flat() bool {
	return len(s.Questions) > 0 && len(s.Subcategories) == 0
}

// QuestionCount returns the number of literal titles in the section,
// including those under subcategories.
func (s *Section) QuestionCount() int {
	n := len(s.Questions)
	for _, sc := range s.Subcategories {
		n += len(sc.Questions)
	}
	return n
}

// Subcategory returns the named subcategory, or nil.
func (s *Section) Subcategory(name string) *Subcategory {
	for i := range s.Subcategories {
		if s.Subcategories[i].Name == name {
			return &s.Subcategories[i]
		}
	}
	return nil
}

// Part returns the named part, or nil.
func (c *Catalog) Part(name string) *Part {
	for i := range c.Parts {
		if c.Parts[i].Name == name {
			return &c.Parts[i]
		}
	}
	return nil
}

// Section returns the named section, or nil.
func (p *Part) Section(name string) *Section {
	for i := range p.Sections {
		if p.Sections[i].Name == name {
			return &p.Sections[i]
		}
	}
	return nil
}

// QuestionCount returns the number of literal titles in the part.
func (p *Part) QuestionCount() int {
	n := 0
	for i := range p.Sections {
		n += p.Sections[i].QuestionCount()
	}
	return n
}

package catalog

import "tabshelf/internal/tabs/data"

var builtin = []data.Tab{
	{
		ID:         "sunrise-groove",
		Title:      "Sunrise Groove",
		Artist:     "The Morning Lines",
		Instrument: "Guitare",
		Tuning:     "Standard (E A D G B E)",
		Capo:       "2",
		Difficulty: "Facile",
		Tags:       []string{"acoustique", "pop", "arpeges"},
		Content: `Intro

E|-----0-----0-----0-----0---|
B|---1-----1-----1-----1-----|
G|-2-----2-----2-----2-------|
D|---------------------------|
A|---------------------------|
E|---------------------------|

Couplet

E|-----0-----0-----0-----0---|
B|---1-----1-----1-----1-----|
G|-2-----2-----2-----2-------|
D|---------------------------|
A|-----0-----------2-----2---|
E|-----------3---------------|`,
	},
	{
		ID:         "midnight-bassline",
		Title:      "Midnight Bassline",
		Artist:     "City Lights",
		Instrument: "Basse",
		Tuning:     "Standard (E A D G)",
		Capo:       "Aucun",
		Difficulty: "Intermediaire",
		Tags:       []string{"groove", "funk", "slap"},
		Content: `Main

G|----------------|----------------|
D|-----------5-7--|-----------5-7--|
A|-----5-7-8------|-----5-7-8------|
E|-5-8------------|-5-8------------|

Break

G|----------------|
D|-----7-5--------|
A|-5-7-----7-5----|
E|-------------8--|`,
	},
	{
		ID:         "coastline-ukulele",
		Title:      "Coastline",
		Artist:     "Blue Tides",
		Instrument: "Ukulele",
		Tuning:     "Standard (G C E A)",
		Capo:       "Aucun",
		Difficulty: "Facile",
		Tags:       []string{"chill", "strumming", "ete"},
		Content: `Intro

A|--2---2---0---0-|
E|--3---3---2---2-|
C|--2---2---2---2-|
G|--0---0---0---0-|

Refrain

A|--5---5---3---3-|
E|--5---5---3---3-|
C|--4---4---2---2-|
G|--0---0---0---0-|`,
	},
}

// Builtin returns fresh copies of the tabs shipped with tabshelf.
func Builtin() []data.Tab {
	return data.CloneAll(builtin)
}

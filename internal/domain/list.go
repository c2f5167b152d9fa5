package domain

import "strings"

type ListID string

type List struct {
	ID    ListID
	Title string
}

// FindList returns the list whose title matches name exactly.
func FindList(lists []List, name string) (List, bool) {
	name = strings.TrimSpace(name)
	for _, list := range lists {
		if list.Title == name {
			return list, true
		}
	}

	return List{}, false
}

var fileNameReplacer = strings.NewReplacer(
	"/", "_", "\\", "_", ":", "_", "*", "_", "?", "_",
	"\"", "_", "<", "_", ">", "_", "|", "_", "\x00", "_",
)

// FileName turns the title into a name safe to create on common filesystems.
func (l List) FileName() string {
	name := strings.TrimSpace(fileNameReplacer.Replace(l.Title))
	name = strings.Trim(name, ".")
	if name == "" {
		return "list-" + string(l.ID)
	}
	return name
}

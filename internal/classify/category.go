// Package classify assigns home-directory application folders to
// installation categories by matching derived candidate names against
// the collected source inventories.
package classify

// Category indicates how a scanned folder was matched against the
// installation sources.
type Category string

// Category constants, in match-precedence order.
const (
	InstalledPackage      Category = "installed-package"
	InstalledExecutable   Category = "installed-executable"
	MaybeInstalledPartial Category = "maybe-installed-partial"
	InstalledFlatpak      Category = "installed-flatpak"
	InstalledDesktopFile  Category = "installed-desktop-file"
	InstalledAppImage     Category = "installed-appimage"
	Orphaned              Category = "orphaned"
	Kept                  Category = "kept"
)

// AllCategories lists every category in display order.
var AllCategories = []Category{
	InstalledPackage,
	InstalledExecutable,
	MaybeInstalledPartial,
	InstalledFlatpak,
	InstalledDesktopFile,
	InstalledAppImage,
	Orphaned,
	Kept,
}

// Display returns the human-readable label for a category.
func (c Category) Display() string {
	switch c {
	case InstalledPackage:
		return "Installed (package match)"
	case InstalledExecutable:
		return "Installed (executable found)"
	case MaybeInstalledPartial:
		return "Maybe Installed (partial package match)"
	case InstalledFlatpak:
		return "Installed (Flatpak)"
	case InstalledDesktopFile:
		return "Installed (desktop file match)"
	case InstalledAppImage:
		return "Installed (AppImage)"
	case Orphaned:
		return "Orphaned"
	case Kept:
		return "Kept"
	}
	return string(c)
}

// ParseCategory maps a stored category string back to a Category.
// Unknown strings are returned as-is so old history rows still render.
func ParseCategory(s string) Category {
	return Category(s)
}

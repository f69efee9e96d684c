package web

import (
	"slices"

	twmerge "github.com/Oudwins/tailwind-merge-go"
)

// Region names a semantic part of the album layout.
type Region string

const (
	RegionBody        Region = "body"
	RegionAppBar      Region = "appBar"
	RegionToolbar     Region = "toolbar"
	RegionIcon        Region = "icon"
	RegionTitle       Region = "title"
	RegionCardGrid    Region = "cardGrid"
	RegionGrid        Region = "grid"
	RegionGridItem    Region = "gridItem"
	RegionCard        Region = "card"
	RegionCardMedia   Region = "cardMedia"
	RegionCardContent Region = "cardContent"
	RegionCardTitle   Region = "cardTitle"
	RegionCardText    Region = "cardText"
	RegionCardActions Region = "cardActions"
	RegionButton      Region = "button"
	RegionFooter      Region = "footer"
	RegionFooterTitle Region = "footerTitle"
	RegionFooterText  Region = "footerText"
	RegionCopyright   Region = "copyright"
	RegionLink        Region = "link"
)

var styles = map[Region]string{
	RegionBody:        "m-0 min-h-screen bg-white font-sans text-gray-900 antialiased",
	RegionAppBar:      "relative bg-blue-700 text-white shadow",
	RegionToolbar:     "flex min-h-16 items-center px-6",
	RegionIcon:        "mr-4 h-6 w-6 fill-current",
	RegionTitle:       "truncate text-xl font-medium",
	RegionCardGrid:    "mx-auto max-w-4xl px-6 py-16",
	RegionGrid:        "grid grid-cols-1 gap-8 sm:grid-cols-2 md:grid-cols-3",
	RegionGridItem:    "flex",
	RegionCard:        "flex h-full w-full flex-col overflow-hidden rounded bg-white shadow",
	RegionCardMedia:   "bg-gray-200 bg-cover bg-center pt-[56.25%]",
	RegionCardContent: "grow p-4",
	RegionCardTitle:   "mb-2 text-2xl",
	RegionCardText:    "text-base",
	RegionCardActions: "flex items-center gap-2 p-2",
	RegionButton:      "rounded px-2 py-1 text-sm font-medium uppercase text-blue-700 hover:bg-blue-50",
	RegionFooter:      "bg-white p-12",
	RegionFooterTitle: "mb-2 text-center text-xl font-medium",
	RegionFooterText:  "text-center text-base text-gray-500",
	RegionCopyright:   "text-center text-sm text-gray-500",
	RegionLink:        "text-inherit underline",
}

// Class returns the classes for a region with extra appended. Extra classes
// override conflicting region classes.
func Class(region Region, extra ...string) string {
	base, ok := styles[region]
	if !ok && len(extra) == 0 {
		return ""
	}
	return twmerge.Merge(append([]string{base}, extra...)...)
}

// Regions lists every styled region, sorted by name.
func Regions() []Region {
	regions := make([]Region, 0, len(styles))
	for region := range styles {
		regions = append(regions, region)
	}
	slices.Sort(regions)
	return regions
}

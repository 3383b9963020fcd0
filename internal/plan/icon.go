package plan

// Icon identifies the glyph drawn on a task node.
type Icon string

const (
	IconCloud     Icon = "cloud"
	IconBeaker    Icon = "beaker"
	IconWrench    Icon = "wrench"
	IconSun       Icon = "sun"
	IconArrowPath Icon = "arrow-path"
)

var iconSet = [...]Icon{IconCloud, IconBeaker, IconWrench, IconSun, IconArrowPath}

// IconFor picks an icon cyclically by plan-item index.
func IconFor(index int) Icon {
	n := len(iconSet)
	return iconSet[((index%n)+n)%n]
}

// Icons returns the fixed icon set in selection order.
func Icons() []Icon {
	icons := make([]Icon, len(iconSet))
	copy(icons, iconSet[:])
	return icons
}

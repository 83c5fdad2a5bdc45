package models

// ColorTag identifies one entry of the fixed collection palette
type ColorTag string

const (
	ColorSunset    ColorTag = "sunset"
	ColorPoppy     ColorTag = "poppy"
	ColorRosebud   ColorTag = "rosebud"
	ColorSnowflake ColorTag = "snowflake"
	ColorCandy     ColorTag = "candy"
	ColorFirtree   ColorTag = "firtree"
	ColorMetal     ColorTag = "metal"
	ColorPowder    ColorTag = "powder"
)

// AllColorTags returns the palette keys in display order
func AllColorTags() []ColorTag {
	return []ColorTag{
		ColorSunset,
		ColorPoppy,
		ColorRosebud,
		ColorSnowflake,
		ColorCandy,
		ColorFirtree,
		ColorMetal,
		ColorPowder,
	}
}

// Valid reports whether c is a palette key
func (c ColorTag) Valid() bool {
	for _, tag := range AllColorTags() {
		if tag == c {
			return true
		}
	}
	return false
}

func (c ColorTag) String() string {
	return string(c)
}

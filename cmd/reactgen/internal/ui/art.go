package ui

// Banner is shown at the top of the init flow
var Banner = []string{
	`┬─┐┌─┐┌─┐┌─┐┌┬┐┌─┐┌─┐┌┐┌`,
	`├┬┘├┤ ├─┤│   │ │ ┬├┤ │││`,
	`┴└─└─┘┴ ┴└─┘ ┴ └─┘└─┘┘└┘`,
	`JSON to React, one file at a time`,
}

// BannerFor returns the banner, or nothing when the terminal is too small
// to fit it above the form
func BannerFor(width, height int) []string {
	if (width > 0 && width < 30) || (height > 0 && height < 24) {
		return nil
	}
	return Banner
}

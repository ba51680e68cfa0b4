package installer

// Profile icon shipped inline so generated entries render without touching
// the launcher's icon set.
const iconPNG = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

func profileIcon() string {
	return "data:image/png;base64," + iconPNG
}

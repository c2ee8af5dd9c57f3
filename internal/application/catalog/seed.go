package catalog

// seedSmiles is the built-in curated list loaded into an empty catalog at
// startup. Images are Unsplash, already sized for mobile.
var seedSmiles = []struct {
	imageURL    string
	description string
}{
	{"https://images.unsplash.com/photo-1548681528-6a5c45b66b42?ixlib=rb-4.0.3&q=85&fm=jpg&crop=entropy&cs=srgb&w=400", "A happy golden retriever enjoying the day."},
	{"https://images.unsplash.com/photo-1596423253245-935e45c110cc?ixlib=rb-4.0.3&q=85&fm=jpg&crop=entropy&cs=srgb&w=400", "A baby's joyful, heartwarming smile."},
	{"https://images.unsplash.com/photo-1529156069898-49953e39b3ac?ixlib=rb-4.0.3&q=85&fm=jpg&crop=entropy&cs=srgb&w=400", "Friends sharing a happy moment together."},
	{"https://images.unsplash.com/photo-1616012479905-24955a82193b?ixlib=rb-4.0.3&q=85&fm=jpg&crop=entropy&cs=srgb&w=400", "A lifetime of happiness in their smiles."},
	{"https://images.unsplash.com/photo-1599443642348-80b182a46c24?ixlib=rb-4.0.3&q=85&fm=jpg&crop=entropy&cs=srgb&w=400", "A content cat with a subtle, happy smile."},
	{"https://images.unsplash.com/photo-1517849845537-4d257902454a?ixlib=rb-4.0.3&q=85&fm=jpg&crop=entropy&cs=srgb&w=400", "A cheerful dog with a big smile."},
	{"https://images.unsplash.com/photo-1544005313-94ddf0286df2?ixlib=rb-4.0.3&q=85&fm=jpg&crop=entropy&cs=srgb&w=400", "A woman with a genuine, happy smile."},
	{"https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?ixlib=rb-4.0.3&q=85&fm=jpg&crop=entropy&cs=srgb&w=400", "A man with a warm, welcoming smile."},
	{"https://images.unsplash.com/photo-1581833971358-2c8b550f87b3?ixlib=rb-4.0.3&q=85&fm=jpg&crop=entropy&cs=srgb&w=400", "Children playing and laughing together."},
	{"https://images.unsplash.com/photo-1570295999919-56ceb5ecca61?ixlib=rb-4.0.3&q=85&fm=jpg&crop=entropy&cs=srgb&w=400", "A beautiful sunrise bringing joy to the day."},
	{"https://images.unsplash.com/photo-1522075469751-3a6694fb2f61?ixlib=rb-4.0.3&q=85&fm=jpg&crop=entropy&cs=srgb&w=400", "A couple sharing laughter and joy."},
	{"https://images.unsplash.com/photo-1531746020798-e6953c6e8e04?ixlib=rb-4.0.3&q=85&fm=jpg&crop=entropy&cs=srgb&w=400", "A child's pure and innocent smile."},
	{"https://images.unsplash.com/photo-1518717758536-85ae29035b6d?ixlib=rb-4.0.3&q=85&fm=jpg&crop=entropy&cs=srgb&w=400", "A happy family moment together."},
	{"https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?ixlib=rb-4.0.3&q=85&fm=jpg&crop=entropy&cs=srgb&w=400", "A man with a confident, warm smile."},
	{"https://images.unsplash.com/photo-1545167622-3a6ac756afa4?ixlib=rb-4.0.3&q=85&fm=jpg&crop=entropy&cs=srgb&w=400", "Grandparents sharing wisdom and smiles."},
}

package forge

// Static content pools. All read-only; generators sample them through
// the keyed random source so the tables themselves carry no state.

var worldNamePrefixes = []string{
	"Aether", "Umbra", "Thorn", "Vael", "Kael", "Mor", "Sunder", "Gloam",
	"Ashen", "Briar", "Cinder", "Dusk", "Ever", "Frost", "Grim", "Hollow",
	"Iron", "Lumen", "Myr", "Night",
}

var worldNameSuffixes = []string{
	"fall", "reach", "spire", "mere", "hold", "gard", "wyn", "shard",
	"vale", "moor", "crest", "deep", "fen", "march", "rock", "veil",
}

var cosmologyRulePool = []string{
	"The world rests on the bones of a dead god whose dreams still leak into it.",
	"Two moons pull the tides of magic; spells cast under both are unreliable.",
	"The dead do not cross over until someone speaks their true name aloud.",
	"Every century the stars rearrange themselves and prophecy must be rewritten.",
	"Iron remembers. Weapons carry the grudges of everyone they have killed.",
	"The ocean is older than the land and owes it nothing.",
	"Ley lines knot beneath ruins, and the knots are slowly tightening.",
	"Gods may only act through mortals who have refused them at least once.",
	"Winter is a living thing that must be bargained with each year.",
	"Mirrors hold a second, slower world that occasionally falls out of step.",
	"Names have weight; a thing renamed is a thing changed.",
	"The underworld floods when the world above forgets its dead.",
	"Dragons are the punctuation of history: nothing ends until one appears.",
	"Magic is borrowed, and the lender has started calling in debts.",
}

var coreConflictPool = []string{
	"An old empire's successor states dispute a border drawn in blood",
	"A resurgent cult promises cheap miracles at a hidden price",
	"The trade guilds quietly strangle the crown's treasury",
	"Refugees from a blighted land strain every city they reach",
	"A forbidden school of magic is being practiced openly again",
	"Two churches share one god and agree on nothing else",
	"The frontier is closing, and those who tamed it are unwanted",
	"Something beneath the deepest mine has begun answering prayers",
	"A peace treaty holds only while one ancient witness lives",
	"The harvest has failed twice and the granaries are guarded by mercenaries",
	"A royal heir has vanished and three pretenders have not",
	"The sea lanes belong to a pirate compact nobody admits to funding",
}

var factionNameAdjectives = []string{
	"Crimson", "Gilded", "Silent", "Ashen", "Verdant", "Hollow", "Iron",
	"Pale", "Sable", "Amber", "Broken", "Veiled", "Last", "First",
	"Wandering", "Sovereign", "Umbral", "Radiant",
}

var factionNameNouns = []string{
	"Covenant", "Compact", "Circle", "Brotherhood", "Syndicate", "Court",
	"Order", "Accord", "Banner", "Choir", "Reclaimers", "Wardens",
	"Tide", "Pact", "Assembly", "Lanterns", "Sentinels", "Vanguard",
}

var ideologyPool = []string{
	"restorationist", "mercantile expansionist", "theocratic",
	"radical egalitarian", "isolationist", "apocalyptic",
	"scholarly preservationist", "militarist", "druidic traditionalist",
	"abolitionist", "royalist", "syncretic mystic",
}

var factionGoalPool = []string{
	"control the river trade",
	"recover a relic lost in the last war",
	"place an ally on a vacant throne",
	"purge a rival's influence from the capital",
	"re-open a sealed dungeon they believe holds their founder",
	"broker a peace that leaves them holding the borderlands",
	"corner the market on enchanted goods",
	"protect the old shrines from industrial expansion",
	"expose a rival faction's pact with outsiders",
	"settle the corrupted frontier and sanctify it",
	"buy, bribe, or burn their way into the council of lords",
	"awaken something sleeping beneath the mountains",
}

// Biome pool with tonal categories driving weighted selection.
type biomeEntry struct {
	name     string
	category string // "dark", "cozy", "exotic", "neutral"
}

var biomePool = []biomeEntry{
	{"blighted marsh", "dark"},
	{"shadowed pine forest", "dark"},
	{"ashen wastes", "dark"},
	{"haunted moorland", "dark"},
	{"rolling farmland", "cozy"},
	{"orchard hills", "cozy"},
	{"river valley", "cozy"},
	{"crystal highlands", "exotic"},
	{"floating archipelago", "exotic"},
	{"singing dunes", "exotic"},
	{"temperate woodland", "neutral"},
	{"coastal cliffs", "neutral"},
	{"open steppe", "neutral"},
	{"old-growth forest", "neutral"},
}

var biomeFlavorPhrases = []string{
	"where the old roads still remember travelers",
	"veined with ruins nobody claims",
	"whose weather arrives a day before its causes",
	"feared by honest mapmakers",
	"that smells faintly of the last age",
}

var creatureArchetypePool = []string{
	"gravewalker", "marsh hag", "clockwork sentinel", "dire wolf",
	"pale knight", "bog serpent", "ember drake", "hollow saint",
	"mirror wraith", "stone troll", "carrion prince", "fae courtier",
	"rust beast", "deep chorus", "plague herald", "sky leviathan",
}

var personalityTraitPool = []string{
	"stubborn", "superstitious", "wry", "unflinchingly honest",
	"haunted", "meticulous", "reckless", "soft-hearted", "calculating",
	"devout", "sardonic", "curious to a fault", "slow to trust",
	"fiercely loyal", "quietly ambitious",
}

var backgroundsByTech = map[TechLevel][]string{
	TechPrimitive:   {"bone-reader", "flint knapper", "herd chief's ward", "cave painter", "salt trader"},
	TechMedieval:    {"hedge knight", "guild apprentice", "temple foundling", "poacher", "disgraced scribe", "caravan guard"},
	TechRenaissance: {"printer's devil", "duelist for hire", "ship's navigator", "court alchemist", "banker's courier"},
	TechIndustrial:  {"factory whistleblower", "rail surveyor", "union organizer", "airship stoker", "patent clerk"},
	TechArcanotech:  {"leyline engineer", "thought-broker", "golem registrar", "void customs officer", "memory surgeon"},
}

var townSyllables = struct {
	first, second []string
}{
	first:  []string{"Bar", "Cal", "Dun", "Els", "Far", "Gol", "Har", "Kess", "Lorn", "Mal", "Nor", "Oss", "Pell", "Rav", "Sel", "Tor"},
	second: []string{"wick", "ford", "haven", "stead", "bridge", "mark", "holt", "garde", "mouth", "field", "row", "cross"},
}

var npcNameSyllables = struct {
	first, second []string
}{
	first:  []string{"Al", "Bren", "Cas", "Dor", "Ed", "Fen", "Gid", "Hol", "Is", "Jor", "Kel", "Lys", "Mar", "Ned", "Ori", "Pru"},
	second: []string{"a", "an", "ric", "wen", "eth", "ora", "is", "mund", "ette", "o", "da", "eon"},
}

var dungeonNameParts = struct {
	adjectives, nouns []string
}{
	adjectives: []string{"Sunken", "Howling", "Forgotten", "Bleeding", "Gilded", "Silent", "Shattered", "Drowned"},
	nouns:      []string{"Catacomb", "Vault", "Warren", "Sanctum", "Barrow", "Undercroft", "Reliquary", "Maw"},
}

var rumorPrefixes = []string{
	"Tavern talk says",
	"A half-drunk courier swears",
	"The broadsheets are claiming",
	"Pilgrims on the north road whisper",
	"A fence in the lower market insists",
	"The gravedigger will tell anyone that",
}

var lootFlavorPool = []string{
	"etched with a prayer in a dead dialect",
	"still warm, as if recently owned",
	"wrapped in funeral linen",
	"bearing the crest of a family that no longer exists",
	"humming faintly when held near water",
	"stamped by a guild that denies making it",
	"stained with something that never quite dries",
	"lighter than it has any right to be",
}

var magicSchoolPool = []string{
	"hearth-warding", "grave-speech", "storm-calling", "threadbinding",
	"mirror-craft", "bone-singing", "ember-shaping", "tide-reading",
}

var villainArchetypePool = []string{
	"dark_lord", "fallen_hero", "hungry_god", "merchant_king",
	"plague_bride", "usurper", "machine_intelligence", "court_of_thorns",
}

var regionNameAdjectives = []string{
	"Upper", "Lower", "Old", "Far", "Greater", "Lesser", "Inner", "Outer",
	"North", "South", "East", "West",
}

var speechTicPool = []string{
	"answers questions with proverbs",
	"never uses a stranger's name twice",
	"swears by defunct saints",
	"counts on fingers while lying",
	"addresses everyone by profession",
	"trails off before bad news",
}

var narrativeDirectives = []string{
	"Surface at most one active tension per scene; let the rest simmer.",
	"Rumors must be checkable: every rumor points at a place or a name.",
	"Escalate the villain only in response to player action, never off-screen.",
	"Corrupted regions should be felt three scenes before they are seen.",
	"When in doubt, make the consequence social before making it lethal.",
}

var tacticalDirectives = []string{
	"Telegraph elite creatures one encounter in advance.",
	"Boss encounters draw from the boss pool of the current region's biome.",
	"Faction patrols scale with the faction's current power level.",
	"Collapsed dungeons stay on the map as scars, not as content.",
	"Never spend more than one wild-magic surge per session.",
}

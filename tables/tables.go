// Package tables holds the static vocabulary tables the item forge draws
// from. Expand these lists to flavor the generator for your own setting.
package tables

// Rarities in ascending order of power. Display styling per rarity lives
// in the card package.
var Rarities = []string{
	"Common",
	"Uncommon",
	"Rare",
	"Very Rare",
	"Legendary",
	"Artifact",
}

var ItemTypes = []string{
	"sword",
	"dagger",
	"greatsword",
	"longbow",
	"shortbow",
	"warhammer",
	"battleaxe",
	"mace",
	"staff",
	"wand",
	"orb",
	"shield",
	"breastplate",
	"leather armor",
	"cloak",
	"ring",
	"amulet",
	"belt",
	"boots",
	"helm",
	"gauntlets",
	"tome",
	"instrument",
	"lantern",
	"maul",
	"flail",
	"chakram",
	"crossbow",
	"spellbook",
}

var Materials = []string{
	"iron",
	"steel",
	"obsidian",
	"mithral",
	"adamantine",
	"dragonbone",
	"cold iron",
	"star metal",
	"shadowglass",
	"crystalline",
	"runic stone",
	"ghostwood",
	"moonsteel",
	"bloodstone",
	"void crystal",
	"sunforged bronze",
	"eldritch ivory",
	"wyrmscale",
}

var Qualities = []string{
	"ornate",
	"runed",
	"weathered",
	"gleaming",
	"ancient",
	"ceremonial",
	"barbaric",
	"elegant",
	"jagged",
	"etched",
	"sunglow",
	"frostbitten",
	"ember-forged",
	"saintly",
	"cursed",
	"prismatic",
	"mirrorbright",
	"rootbound",
}

var Enchantments = []string{
	"flames dance along its edge 🔥",
	"it hums softly when danger is near",
	"it whispers the names of the dead in a chilling murmur 💀",
	"it glows faintly under the light of the moon 🌙",
	"its surface drinks in surrounding light",
	"it sings in battle with eerie harmony",
	"it bends shadows around the wielder",
	"it crackles with latent storm energy ⚡",
	"it radiates a soothing warmth",
	"it leaves faint spectral afterimages when swung",
	"tiny motes of starlight drift from it when drawn ✨",
	"a faint chorus of distant voices echoes inside it",
	"it briefly reveals invisible runes on nearby surfaces",
	"it leaves behind the scent of rain on stone",
	"its reflection sometimes moves a heartbeat out of sync",
}

var Origins = []string{
	"forged in the heart of a dying star",
	"crafted by a forgotten archmage",
	"recovered from the depths of an ancient ruin",
	"woven from the dreams of sleeping gods",
	"hammered on an anvil of dragonfire",
	"blessed in the waters of a sacred spring",
	"stolen from the hoard of a jealous demon",
	"found in the shattered vaults beneath a ruined city",
	"gifted by the fey courts at a terrible price",
	"salvaged from the armor of a fallen celestial",
	"pieced together from relics scattered across a dozen battlefields",
	"sung into being by a circle of druids at solstice",
	"excavated from a meteorite that never cooled",
	"traded for a single whispered secret in a midnight market",
	"recovered from a time-locked vault that should never have opened",
}

var Quirks = []string{
	"occasionally changes weight at random",
	"emits the scent of ozone when used",
	"causes faint spectral motes to orbit the wielder",
	"sometimes speaks in riddles only the wielder can hear",
	"is invisible to anyone who has lied in the last hour",
	"refuses to be drawn against the innocent",
	"leaves footprints of light wherever it goes",
	"causes nearby candles to burn with colored flames 🕯️",
	"slowly repairs itself from any damage",
	"seems slightly heavier in the presence of dragons 🐉",
	"occasionally giggles softly when no one is looking",
	"casts a shadow that sometimes points in the wrong direction",
	"rings like crystal when lies are spoken nearby",
	"attracts small harmless animals that refuse to leave",
	"its reflection is always a little older than reality",
}

var AttunementRequirements = []string{
	"Attunement required by a spellcaster",
	"Attunement required by a creature of good alignment",
	"Attunement required by a creature of non‑lawful alignment",
	"Attunement required by a proficient martial weapon user",
	"No attunement required",
	"Attunement required by a creature who has slain a dragon",
	"Attunement required by a creature proficient with heavy armor",
	"Attunement required by a bard, cleric, or paladin",
	"Attunement required by a creature who has made a pact with a patron",
	"Attunement required by a creature bearing a notable scar",
}

var MechanicalEffects = []string{
	"+1 bonus to attack and damage rolls",
	"+2 bonus to AC while worn",
	"advantage on saving throws against being charmed",
	"resistance to fire damage",
	"resistance to cold damage",
	"resistance to necrotic damage",
	"you can cast Detect Magic at will",
	"you can cast Misty Step once per short rest",
	"you can speak, read, and write Draconic",
	"once per day, you can reroll a failed attack roll",
	"your walking speed increases by 10 ft.",
	"you gain darkvision out to 60 ft.",
	"once per long rest, you can turn invisible for 1 minute",
	"you have advantage on Initiative rolls",
	"you can breathe underwater",
	"your spell save DC for one class increases by 1",
}

// Epithets used by the named-artifact naming style.
var Epithets = []string{
	"the Dragonsong",
	"the Starforged",
	"the Umbral Edge",
	"the Dawnbreaker",
	"the Soulbound",
	"the Dreamweaver",
	"the Gravewhisper",
	"the Stormcall",
	"the Night's Embrace",
	"the Sunshard",
	"the Last Oath",
	"the Silent Choir",
}

// ThemedMechanicalEffects buckets a subset of effects by flavor theme.
// The forge falls back to MechanicalEffects for any theme without a
// non-empty bucket, so "generic" intentionally has no entry here.
var ThemedMechanicalEffects = map[string][]string{
	"fire": {
		"resistance to fire damage",
		"once per day, you can cast Burning Hands (2nd level)",
		"your weapon attacks deal an extra 1d4 fire damage",
		"you are unharmed by nonmagical flames",
	},
	"cold": {
		"resistance to cold damage",
		"once per day, you can cast Armor of Agathys (1st level)",
		"your weapon attacks deal an extra 1d4 cold damage",
		"you ignore difficult terrain caused by ice or snow",
	},
	"shadow": {
		"you gain darkvision out to 60 ft.",
		"advantage on Dexterity (Stealth) checks in dim light or darkness",
		"once per long rest, you can turn invisible for 1 minute",
		"once per day, you can cast Darkness",
	},
	"storm": {
		"your weapon attacks deal an extra 1d4 lightning damage",
		"resistance to thunder damage",
		"once per day, you can cast Thunderwave (2nd level)",
		"you cannot be knocked prone by wind or weather",
	},
	"fey": {
		"advantage on saving throws against being charmed",
		"you can cast Misty Step once per short rest",
		"you can speak with beasts and plants once per long rest",
		"your walking speed increases by 10 ft.",
	},
	"radiant": {
		"your weapon attacks deal an extra 1d4 radiant damage",
		"resistance to necrotic damage",
		"once per day, you can cast Cure Wounds (1st level)",
		"you shed bright light in a 10 ft. radius at will",
	},
	"necrotic": {
		"resistance to necrotic damage",
		"your weapon attacks deal an extra 1d4 necrotic damage",
		"once per day, you can cast False Life (2nd level)",
		"you can speak with a corpse for one minute once per long rest",
	},
	"arcane": {
		"you can cast Detect Magic at will",
		"your spell save DC for one class increases by 1",
		"once per day, you can reroll a failed attack roll",
		"you can read all writing, mundane or magical",
	},
}

package catalog

// catalogData 食材目錄，依分類固定排序
var catalogData = []Category{
	{
		Key: "vegetables",
		Items: []string{
			"Spinach", "Kale", "Cabbage", "Broccoli", "Cauliflower", "Carrot", "Potato", "Sweet Potato", "Yam",
			"Taro", "Eggplant (Aubergine)", "Zucchini (Courgette)", "Pumpkin", "Butternut Squash",
			"Bell Pepper (Red)", "Bell Pepper (Green)", "Bell Pepper (Yellow)", "Tomato", "Cherry Tomato", "Okra",
			"Green Beans", "Snow Peas", "Sugar Snap Peas", "Brussel Sprouts", "Asparagus", "Celery", "Fennel Bulb",
			"Radish", "Beetroot", "Turnip", "Parsnip", "Leek", "Onion (Yellow)", "Onion (Red)", "Shallot",
			"Spring Onion (Scallion)", "Garlic", "Ginger Root", "Lotus Root", "Bamboo Shoots", "Daikon Radish",
			"Bitter Gourd", "Chayote", "Cassava", "Water Chestnut", "Kohlrabi", "Artichoke", "Mushroom (Button)",
			"Mushroom (Shiitake)", "Mushroom (Oyster)", "Mushroom (Portobello)", "Mushroom (Enoki)",
			"Mushroom (Maitake)", "Seaweed (Nori)", "Seaweed (Kombu)", "Seaweed (Wakame)", "Seaweed (Hijiki)",
			"Edamame", "Cucumber", "Gherkin", "Lettuce (Romaine)", "Lettuce (Iceberg)", "Lettuce (Butterhead)",
			"Arugula (Rocket)", "Endive", "Watercress", "Mustard Greens", "Collard Greens", "Swiss Chard",
			"Moringa Leaves",
		},
	},
	{
		Key: "fruits",
		Items: []string{
			"Apple (Red Delicious)", "Apple (Granny Smith)", "Pear", "Quince", "Banana", "Plantain", "Mango",
			"Papaya", "Pineapple", "Guava", "Lychee", "Longan", "Rambutan", "Mangosteen", "Passion Fruit",
			"Dragon Fruit", "Kiwi", "Strawberry", "Blueberry", "Raspberry", "Blackberry", "Cranberry", "Grape (Red)",
			"Grape (Green)", "Grape (Concord)", "Cherry", "Sour Cherry", "Plum", "Apricot", "Peach", "Nectarine",
			"Persimmon", "Fig", "Date", "Pomegranate", "Orange", "Mandarin", "Clementine", "Tangerine", "Grapefruit",
			"Lemon", "Lime", "Kumquat", "Yuzu", "Pomelo", "Durian", "Jackfruit", "Breadfruit", "Coconut", "Avocado",
			"Olive (Green)", "Olive (Black)", "Starfruit (Carambola)", "Sapodilla", "Soursop (Graviola)", "Tamarind",
			"Gooseberry", "Amla (Indian Gooseberry)", "Mulberry", "Cloudberry", "Elderberry", "Boysenberry",
			"Currant (Black)", "Currant (Red)", "Currant (White)", "Loquat", "Medlar", "Jujube", "Baobab Fruit",
			"Ackee",
		},
	},
	{
		Key: "grains_legumes_seeds",
		Items: []string{
			"Rice (Basmati)", "Rice (Jasmine)", "Rice (Arborio)", "Rice (Brown)", "Rice (Wild)", "Wheat (Durum)",
			"Wheat (Whole)", "Bulgur", "Couscous", "Barley", "Rye", "Spelt", "Farro", "Millet", "Teff",
			"Quinoa (White)", "Quinoa (Red)", "Quinoa (Black)", "Buckwheat", "Amaranth", "Sorghum",
			"Maize (Yellow Corn)", "White Corn", "Hominy", "Polenta", "Lentils (Red)", "Lentils (Green)",
			"Lentils (Black Beluga)", "Lentils (Brown)", "Chickpeas (Garbanzo)", "Black Beans", "Kidney Beans",
			"Pinto Beans", "Navy Beans", "Cannellini Beans", "Mung Beans", "Adzuki Beans", "Soybeans", "Fava Beans",
			"Broad Beans", "Lima Beans", "Pigeon Peas", "Split Peas (Yellow)", "Split Peas (Green)", "Peanuts",
			"Sunflower Seeds", "Pumpkin Seeds (Pepitas)", "Sesame Seeds (White)", "Sesame Seeds (Black)", "Flaxseeds",
			"Chia Seeds", "Poppy Seeds", "Hemp Seeds", "Mustard Seeds (Yellow)", "Mustard Seeds (Brown)",
			"Caraway Seeds", "Cumin Seeds", "Nigella Seeds", "Coriander Seeds", "Fennel Seeds", "Fenugreek Seeds",
			"Celery Seeds", "Dill Seeds", "Anise Seeds", "Cardamom Pods (Green)", "Cardamom Pods (Black)", "Cloves",
			"Cinnamon Sticks", "Cassia Bark", "Nutmeg", "Mace", "Star Anise", "Allspice", "Black Peppercorns",
			"White Peppercorns", "Green Peppercorns", "Pink Peppercorns", "Sichuan Peppercorns", "Vanilla Bean",
			"Tonka Bean",
		},
	},
	{
		Key: "dairy_eggs",
		Items: []string{
			"Cow's Milk", "Goat's Milk", "Sheep's Milk", "Buffalo Milk", "Yogurt", "Kefir", "Buttermilk", "Cream",
			"Sour Cream", "Clotted Cream", "Butter", "Ghee", "Cheese (Cheddar)", "Cheese (Parmesan)",
			"Cheese (Mozzarella)", "Cheese (Feta)", "Cheese (Ricotta)", "Cheese (Paneer)", "Cheese (Halloumi)",
			"Cheese (Brie)", "Cheese (Camembert)", "Cheese (Blue Cheese)", "Cheese (Roquefort)",
			"Cheese (Gorgonzola)", "Cheese (Manchego)", "Cheese (Queso Fresco)", "Cheese (Cotija)",
			"Cheese (Gruyère)", "Cheese (Emmental)", "Cheese (Provolone)", "Cheese (Monterey Jack)", "Cheese (Swiss)",
			"Cheese (Cream Cheese)", "Cheese (Mascarpone)", "Cheese (Burrata)", "Egg (Chicken)", "Egg (Duck)",
			"Egg (Quail)", "Egg (Goose)", "Egg (Turkey)",
		},
	},
	{
		Key: "indian_dairy",
		Items: []string{
			"Paneer", "Khoya (Mawa)", "Chhena", "Dahi (Curd/Yogurt)", "Mishti Doi", "Lassi (Sweet)", "Lassi (Salted)",
			"Shrikhand", "Ghee (Desi)", "White Butter (Makkhan)", "Malai (Clotted Cream)", "Rabri",
			"Kulfi Base (Milk Reduction)", "Chaas (Buttermilk)", "Pedha Base (Milk Solid)",
			"Sandesh Base (Chhena Mix)", "Kalakand Base (Thickened Milk)", "Rasgulla Syrup Base (Chhena Balls)",
			"Rasmalai Base (Chhena + Cream)", "Khoa-based Barfi Mix",
		},
	},
	{
		Key: "indian_grains_flours_pulses",
		Items: []string{
			"Toor Dal (Pigeon Pea)", "Chana Dal (Bengal Gram)", "Moong Dal (Split Green Gram)",
			"Urad Dal (Black Gram)", "Masoor Dal (Red Lentil)", "Horse Gram (Kulthi)", "Rajma (Kidney Bean)",
			"Kabuli Chana (White Chickpea)", "Kala Chana (Black Chickpea)", "Moth Beans (Matki)",
			"Green Gram Whole (Sabut Moong)", "Masoor Whole (Brown Lentil)", "Lobia (Black-eyed Pea)",
			"Soybean (Indian Variety)", "Bajra (Pearl Millet)", "Jowar (Sorghum)", "Ragi (Finger Millet)",
			"Kodo Millet", "Foxtail Millet", "Barnyard Millet", "Little Millet", "Amaranth Seeds (Rajgira)",
			"Poha (Flattened Rice)", "Idli Rice (Parboiled)", "Basmati Rice", "Sona Masoori Rice", "Kolam Rice",
			"Matta Rice (Kerala Red)", "Ambemohar Rice (Maharashtra)", "Black Rice (Chakhao, Manipur)",
			"Atta (Whole Wheat Flour)", "Maida (Refined Wheat Flour)", "Besan (Gram Flour)", "Suji (Rava, Semolina)",
			"Rice Flour", "Jowar Flour", "Bajra Flour", "Ragi Flour", "Cornmeal (Makki ka Atta)",
			"Sattu (Roasted Gram Flour)", "Multigrain Flour Mix", "Dalia (Broken Wheat)",
			"Vermicelli (Roasted Semolina)", "Sevai (Rice Vermicelli)", "Papad Base (Urad Flour)",
			"Sabudana (Tapioca Pearls)", "Idiyappam Flour (Rice Noodles)", "Appam Batter (Fermented Rice-Coconut)",
			"Dhokla Batter (Rice + Lentil)", "Adai Batter (Mixed Lentil)",
		},
	},
	{
		Key: "indian_vegetables_fruits",
		Items: []string{
			"Tindora (Ivy Gourd)", "Turai (Ridge Gourd)", "Lauki (Bottle Gourd)", "Karela (Bitter Gourd)",
			"Kundru (Ivy Gourd)", "Parwal (Pointed Gourd)", "Bhindi (Okra)", "Drumstick Pods (Moringa)",
			"Methi Leaves (Fenugreek)", "Palak (Spinach)", "Amaranth Leaves (Chaulai Saag)",
			"Sarson ka Saag (Mustard Greens)", "Bathua Saag (Chenopodium)", "Colocasia Leaves (Arbi ke Patte)",
			"Colocasia Root (Arbi)", "Yam (Suran)", "Elephant Foot Yam (Oal)", "Ash Gourd (Petha)",
			"Snake Gourd (Chichinda)", "Sponge Gourd (Nenua)", "Green Mango", "Raw Banana", "Jackfruit (Kathal, Raw)",
			"Ripe Jackfruit", "Guava (Indian Variety)", "Custard Apple (Sitaphal)", "Jamun (Java Plum)", "Bael Fruit",
			"Wood Apple (Kothbel)", "Karonda (Bengal Currant)", "Ber (Indian Jujube)", "Tamarind (Imli)",
			"Kokum (Garcinia Indica)", "Amla (Indian Gooseberry)", "Nimbu (Indian Lemon)", "Mosambi (Sweet Lime)",
			"Paan Leaves (Betel Leaf)", "Lotus Stem (Kamal Kakdi)", "Banana Stem", "Banana Flower",
			"Gongura (Roselle Leaves)", "Red Pumpkin (Kaddu)", "White Pumpkin (Ash Gourd)",
			"Small Brinjal (Eggplant Varieties)", "Green Chillies (Indian)", "Red Chillies (Byadgi)",
			"Kashmiri Red Chillies", "Bhavnagari Chillies", "Banana Pepper (Indian Variety)", "Curry Leaves",
			"Neem Flowers (Edible)", "Banana Leaf (Cooking Wrapper)", "Jackfruit Seeds", "Starfruit (Kamrakh)",
			"Sapota (Chikoo)", "Mango (Alphonso)", "Mango (Dasheri)", "Mango (Langda)", "Mango (Totapuri)",
			"Mango (Banganapalli)",
		},
	},
	{
		Key: "indian_herbs_spices",
		Items: []string{
			"Hing (Asafoetida)", "Ajwain (Carom Seeds)", "Kalonji (Nigella Seeds)", "Radhuni Seeds (Bengali Spice)",
			"Stone Flower (Dagad Phool)", "Black Cardamom", "Green Cardamom", "Clove", "Cinnamon (Indian Cassia)",
			"Bay Leaf (Tej Patta)", "Star Anise", "Fennel Seeds (Saunf)", "Fenugreek Seeds (Methi)",
			"Mustard Seeds (Black)", "Mustard Seeds (Yellow)", "Coriander Seeds (Dhania)", "Cumin Seeds (Jeera)",
			"Peppercorns (Malabar Black)", "Long Pepper (Pippali)", "Turmeric Root (Haldi)", "Dried Turmeric Powder",
			"Dry Ginger (Sonth)", "Curry Powder (Madras Mix)", "Garam Masala Blend", "Panch Phoron (Bengali 5-spice)",
			"Rasam Powder", "Sambar Powder", "Chaat Masala", "Chana Masala Mix", "Pav Bhaji Masala",
			"Tandoori Masala", "Vindaloo Masala", "Kolhapuri Masala", "Malvani Masala", "Goda Masala (Maharashtrian)",
			"Biryani Masala", "Hyderabadi Haleem Masala", "Fish Curry Masala", "Pickle Masala (Achar Masala)",
			"Dry Coconut (Kopra)", "Dry Red Chillies (Guntur)", "Green Cardamom Powder", "Kashmiri Chilli Powder",
			"Mango Powder (Amchur)", "Pomegranate Seeds (Anardana)", "Black Salt (Kala Namak)",
			"Rock Salt (Sendha Namak)", "White Poppy Seeds (Khus Khus)", "Black Sesame Seeds", "Curry Leaf Powder",
		},
	},
	{
		Key: "condiments_pickles",
		Items: []string{
			"Tamarind Paste", "Kokum Syrup", "Jaggery (Gur)", "Palm Jaggery (Karupatti)",
			"Nolen Gur (Date Palm Jaggery)", "Pickled Mango (Aam ka Achar)", "Pickled Lemon (Nimbu ka Achar)",
			"Pickled Green Chilli", "Pickled Garlic", "Pickled Red Carrot (Punjabi)", "Pickled Amla",
			"Pickled Gongura", "Pickled Bamboo Shoot (NE India)", "Pickled Fish (Assamese)", "Pickled Shrimp (Goan)",
			"Chutney (Coconut)", "Chutney (Mint)", "Chutney (Coriander)", "Chutney (Tomato-Onion)",
			"Chutney (Tamarind-Date)",
		},
	},
	{
		Key: "meats_seafood_oils",
		Items: []string{
			"Chicken", "Duck", "Turkey", "Pork", "Beef", "Lamb", "Goat", "Rabbit", "Venison", "Kangaroo", "Salmon",
			"Tuna", "Sardine", "Cod", "Mackerel", "Prawns", "Lobster", "Crab", "Octopus", "Squid", "Anchovy", "Clams",
			"Mussels", "Scallops", "Oysters", "Sea Urchin (Uni)", "Shark", "Eel", "Hilsa Fish (India)",
			"Rohu Fish (India)", "Tilapia", "Seer Fish (Surmai)", "Mustard Oil", "Coconut Oil",
			"Sesame Oil (Gingelly Oil)", "Peanut Oil", "Sunflower Oil", "Rice Bran Oil", "Olive Oil (Extra Virgin)",
			"Grape Seed Oil",
		},
	},
}

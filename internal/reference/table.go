package reference

// entries is kept in display order; lookups return matches in this order.
var entries = []Entry{
	// South Indian Gravies & Kolambu
	{Key: "vatha kuzhambu", Record: rec("Vatha Kuzhambu", 150, 2, 18, 8, 2, "1/2 cup")},
	{Key: "kara kuzhambu", Record: rec("Kara Kuzhambu", 140, 2, 16, 7, 3, "1/2 cup")},
	{Key: "more kuzhambu", Record: rec("More Kuzhambu", 110, 4, 8, 7, 0.5, "1/2 cup")},
	{Key: "sambar", Record: rec("Sambar", 120, 4, 14, 5, 3, "1 bowl (200g)")},
	{Key: "drumstick sambar", Record: rec("Drumstick Sambar", 115, 4.5, 13, 5, 3.5, "1 bowl")},
	{Key: "rasam", Record: rec("Rasam", 40, 1, 8, 1, 0.5, "1 bowl")},
	{Key: "dal", Record: rec("Dal Fry", 160, 8, 20, 5, 6, "1 bowl")},
	{Key: "spinach dal", Record: rec("Keerai Masiyal (Spinach Dal)", 140, 7, 12, 4, 5, "1 cup")},
	{Key: "avial", Record: rec("Avial (Mixed Veg)", 180, 3, 15, 12, 5, "1 cup")},
	{Key: "fish curry", Record: rec("Meen Kuzhambu (Fish Curry)", 220, 25, 8, 10, 2, "1 cup")},
	{Key: "pondy fish curry", Record: rec("Pondicherry Fish Curry", 240, 24, 10, 12, 2, "1 cup")},
	{Key: "chicken chettinad", Record: rec("Chettinad Chicken Gravy", 290, 28, 8, 16, 2, "1 cup")},

	// Sides (Poriyal/Kootu/Usili)
	{Key: "poriyal", Record: rec("Veg Poriyal (Coconut)", 110, 3, 12, 6, 4, "1/2 cup")},
	{Key: "cabbage poriyal", Record: rec("Cabbage Poriyal", 85, 2, 10, 4, 3, "1/2 cup")},
	{Key: "beetroot poriyal", Record: rec("Beetroot Poriyal", 95, 2, 14, 4, 3.5, "1/2 cup")},
	{Key: "kootu", Record: rec("Veg Kootu", 130, 6, 14, 5, 4, "1 cup")},
	{Key: "snake gourd kootu", Record: rec("Snake Gourd (Pudalangai) Kootu", 110, 5, 12, 4, 3, "1 cup")},
	{Key: "beans usili", Record: rec("Beans Paruppu Usili", 180, 9, 18, 8, 6, "1/2 cup")},
	{Key: "vazhaipoo usili", Record: rec("Banana Flower Usili", 160, 7, 20, 7, 8, "1/2 cup")},
	{Key: "egg poriyal", Record: rec("Egg Poriyal", 160, 12, 2, 11, 0, "2 eggs")},

	// Rice & Tiffins
	{Key: "white rice", Record: rec("White Rice (Cooked)", 205, 4, 45, 0.5, 0.6, "1 cup (158g)")},
	{Key: "brown rice", Record: rec("Brown Rice (Cooked)", 216, 5, 45, 1.8, 3.5, "1 cup")},
	{Key: "millet rice", Record: rec("Millet Rice (Samai/Thinai)", 180, 6, 38, 1.5, 5, "1 cup")},
	{Key: "curd rice", Record: rec("Curd Rice", 280, 7, 40, 10, 1, "1 cup")},
	{Key: "lemon rice", Record: rec("Lemon Rice", 320, 5, 48, 12, 2, "1 cup")},
	{Key: "chicken biryani", Record: rec("Chicken Biryani", 360, 18, 45, 12, 3, "1 cup (200g)")},
	{Key: "veg biryani", Record: rec("Vegetable Biryani", 280, 6, 45, 9, 4, "1 cup")},
	{Key: "chapati", Record: rec("Chapati", 104, 3, 18, 2.5, 2, "1 piece (6 inch)")},
	{Key: "veg kurma", Record: rec("Vegetable Kurma", 190, 5, 18, 11, 4, "1 cup")},
	{Key: "idli", Record: rec("Idli", 39, 2, 8, 0.2, 0.2, "1 piece (30g)")},
	{Key: "dosa", Record: rec("Plain Dosa", 133, 3.8, 23, 3.5, 0.8, "1 medium")},
	{Key: "masala dosa", Record: rec("Masala Dosa", 350, 6, 45, 16, 3, "1 medium")},
	{Key: "vada", Record: rec("Medu Vada", 97, 2.5, 10, 5.5, 1.2, "1 piece")},
	{Key: "upma", Record: rec("Rava Upma", 250, 5, 38, 8, 2.5, "1 cup")},
	{Key: "pongal", Record: rec("Ven Pongal", 310, 8, 42, 13, 3, "1 cup")},
	{Key: "poori", Record: rec("Poori", 140, 3, 18, 6, 1, "1 piece")},

	// Breads & Cereals
	{Key: "wheat bread", Record: rec("Whole Wheat Bread", 160, 8, 28, 2, 4, "2 slices")},
	{Key: "multigrain bread", Record: rec("Multigrain Bread", 180, 9, 30, 3, 5, "2 slices")},
	{Key: "quinoa bread", Record: rec("Quinoa Bread", 90, 4, 15, 1.5, 2, "1 slice")},
	{Key: "corn flakes", Record: branded("Corn Flakes (Kellogg's)", 100, 2, 24, 0, 1, "1 cup (30g)", "Kellogg's")},
	{Key: "muesli", Record: rec("Muesli (Fruit & Nut)", 180, 5, 32, 4, 4, "1/2 cup")},
	{Key: "granola", Record: rec("Granola", 220, 6, 35, 8, 4, "1/2 cup")},
	{Key: "oats", Record: rec("Oatmeal (Cooked)", 150, 5, 27, 3, 4, "1 cup")},

	// Fruits
	{Key: "papaya", Record: rec("Papaya", 43, 0.5, 11, 0.3, 1.7, "100g (1 cup cubes)")},
	{Key: "watermelon", Record: rec("Watermelon", 30, 0.6, 8, 0.2, 0.4, "100g (1 cup cubes)")},
	{Key: "mango", Record: rec("Mango", 60, 0.8, 15, 0.4, 1.6, "100g")},
	{Key: "banana", Record: rec("Banana", 89, 1.1, 23, 0.3, 2.6, "1 medium (100g)")},
	{Key: "apple", Record: rec("Apple", 52, 0.3, 14, 0.2, 2.4, "1 medium (100g)")},
	{Key: "guava", Record: rec("Guava", 68, 2.6, 14, 1, 5.4, "1 medium (100g)")},
	{Key: "pomegranate", Record: rec("Pomegranate", 83, 1.7, 19, 1.2, 4, "1/2 cup arils")},
	{Key: "sapota", Record: rec("Sapota (Chikoo)", 83, 0.4, 20, 1.1, 5.3, "1 fruit")},
	{Key: "jackfruit", Record: rec("Jackfruit", 95, 1.7, 23, 0.6, 1.5, "100g")},
	{Key: "orange", Record: rec("Orange", 47, 0.9, 12, 0.1, 2.4, "1 medium")},
	{Key: "grapes", Record: rec("Grapes", 67, 0.6, 17, 0.4, 0.9, "1 cup")},
	{Key: "pineapple", Record: rec("Pineapple", 50, 0.5, 13, 0.1, 1.4, "1 cup chunks")},
	{Key: "muskmelon", Record: rec("Muskmelon (Cantaloupe)", 34, 0.8, 8, 0.2, 0.9, "100g")},
	{Key: "strawberry", Record: rec("Strawberry", 32, 0.7, 7.7, 0.3, 2, "1 cup")},

	// Salads & Dressings
	{Key: "salad", Record: rec("Green Salad (No Dressing)", 25, 1, 5, 0, 2, "1 bowl")},
	{Key: "ranch", Record: rec("Ranch Dressing", 130, 0, 2, 13, 0, "2 tbsp")},
	{Key: "italian dressing", Record: rec("Italian Dressing", 80, 0, 3, 8, 0, "2 tbsp")},
	{Key: "olive oil", Record: rec("Olive Oil", 120, 0, 0, 14, 0, "1 tbsp")},
	{Key: "vinaigrette", Record: rec("Balsamic Vinaigrette", 45, 0, 3, 4, 0, "1 tbsp")},

	// Thailand 7-11 & Snacks & Tops Market
	{Key: "toastie ham cheese", Record: branded("Ham & Cheese Toastie (7-11)", 290, 9, 33, 13, 1, "1 sandwich", "7-Select")},
	{Key: "toastie sausage cheese", Record: branded("Sausage & Cheese Toastie (7-11)", 320, 11, 32, 16, 1, "1 sandwich", "7-Select")},
	{Key: "cp chicken breast garlic", Record: branded("CP Chicken Breast (Garlic Pepper)", 90, 17, 2, 1.5, 0, "1 pack (90g)", "CP")},
	{Key: "cp chicken breast chili", Record: branded("CP Chicken Breast (Chili)", 90, 17, 2, 1.5, 0, "1 pack (90g)", "CP")},
	{Key: "burger sticky rice", Record: branded("Sticky Rice Burger (Pork)", 240, 7, 42, 5, 1, "1 burger", "7-Select")},
	{Key: "onigiri salmon", Record: branded("Salmon Onigiri", 170, 5, 33, 2, 0, "1 piece", "Ezygo")},
	{Key: "onigiri tuna", Record: branded("Tuna Mayo Onigiri", 190, 5, 32, 5, 0, "1 piece", "Ezygo")},
	{Key: "basil pork rice", Record: branded("Basil Pork with Rice (Kaprao Moo)", 450, 18, 65, 14, 2, "1 box", "Ezygo")},
	{Key: "shrimp fried rice", Record: branded("Shrimp Fried Rice", 380, 12, 55, 11, 2, "1 box", "Ezygo")},
	{Key: "mama tom yum", Record: branded("Mama Noodles (Creamy Tom Yum)", 260, 5, 38, 11, 1, "1 pack (60g)", "Mama")},
	{Key: "jok", Record: rec("Jok (Instant Porridge)", 130, 4, 26, 1, 0, "1 cup")},
	{Key: "betagen", Record: branded("Betagen Fermented Milk", 100, 2, 22, 0, 0, "1 bottle (140ml)", "Betagen")},
	{Key: "meiji milk", Record: branded("Meiji Flavored Milk", 160, 6, 22, 5, 0, "1 bottle (200ml)", "Meiji")},
	{Key: "jele beautie", Record: branded("Jele Beautie Jelly", 30, 0, 7, 0, 1, "1 pack", "Jele")},
	{Key: "c-vitt", Record: rec("C-Vitt Vitamin C Drink", 35, 0, 9, 0, 0, "1 bottle")},
	{Key: "bento squid", Record: branded("Bento Squid Snack (Red)", 20, 3, 2, 0, 0, "1 pack (6g)", "Bento")},
	{Key: "tao kae noi", Record: branded("Tao Kae Noi Seaweed", 20, 1, 1, 1.5, 0.5, "1 small pack", "Tao Kae Noi")},
	{Key: "koh kae", Record: branded("Koh Kae Peanuts (Coconut)", 160, 6, 12, 10, 2, "1 pack (30g)", "Koh Kae")},
	{Key: "lays nori", Record: branded("Lay's Nori Seaweed", 160, 2, 15, 10, 1, "1 serving (30g)", "Lay's")},
	{Key: "lays squid", Record: branded("Lay's Hot Chili Squid", 160, 2, 15, 10, 1, "1 serving (30g)", "Lay's")},
	{Key: "pocky choco banana", Record: branded("Pocky Choco Banana", 110, 2, 18, 4, 1, "1 box (25g)", "Glico")},
	{Key: "pretz larb", Record: branded("Pretz Larb Flavor", 120, 3, 17, 4, 1, "1 box (25g)", "Glico")},

	// Thai & Western
	{Key: "pad thai", Record: rec("Pad Thai", 400, 15, 55, 14, 3, "1 cup")},
	{Key: "green curry", Record: rec("Thai Green Curry (Chicken)", 320, 18, 12, 22, 2, "1 cup")},
	{Key: "tom yum", Record: rec("Tom Yum Soup", 90, 8, 10, 3, 1, "1 bowl")},
	{Key: "chicken breast", Record: rec("Grilled Chicken Breast", 165, 31, 0, 3.6, 0, "100g")},
	{Key: "egg", Record: rec("Boiled Egg", 72, 6.3, 0.6, 5, 0, "1 large")},
	{Key: "pizza", Record: rec("Pizza Slice (Cheese)", 285, 12, 36, 10, 2, "1 slice")},
	{Key: "burger", Record: rec("Cheeseburger", 350, 18, 35, 16, 2, "1 medium")},
	{Key: "pasta", Record: rec("Pasta (Tomato Sauce)", 250, 8, 45, 4, 3, "1 cup")},
	{Key: "protein shake", Record: rec("Whey Protein Shake", 120, 24, 3, 1, 0, "1 scoop in water")},
	{Key: "coffee", Record: rec("Black Coffee", 2, 0.3, 0, 0, 0, "1 cup")},
	{Key: "latte", Record: rec("Cafe Latte", 190, 12, 18, 9, 0, "1 cup (Whole Milk)")},
}

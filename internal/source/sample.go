package source

import "voices/internal/model"

// SampleArticles is the fixed fallback set served when neither the
// upstream database nor the local snapshot is available, so the UI never
// renders empty.
func SampleArticles() []model.Article {
	return []model.Article{
		{
			ID:            1,
			OriginalTitle: "Trump calls for U.S. census to exclude for the first time people with no legal status",
			DisplayTitle:  "New Census Rules Target Undocumented Immigrants",
			AITitle:       "Trump Proposes Historic Change to Census Counting",
			AISummary:     "President Trump announced plans for a 'new' census that would exclude people without legal status, renewing controversial efforts from his first administration. The 14th Amendment requires counting the 'whole number of persons in each state' for congressional representation, making this proposal constitutionally challenging.",
			Translations: map[string]string{
				model.LocaleChinese: "特朗普总统宣布了一项\"新\"人口普查计划，该计划将排除没有合法身份的人员，重新启动了他第一届政府的争议性努力。第十四修正案要求对\"每个州的全部人数\"进行计算，以确定国会代表权，这使得该提案在宪法上面临挑战。",
			},
			TranslatedTitles: map[string]string{
				model.LocaleChinese: "特朗普呼吁美国人口普查首次排除无合法身份人员",
			},
			Source:         "NPR",
			Author:         "NPR Staff",
			ScrapedDate:    "2025-08-07",
			Topic:          "Immigration",
			Priority:       model.PriorityHigh,
			RelevanceScore: 8.5,
			ImageURL:       "https://images.unsplash.com/photo-1589994965851-a8f479c573a9?w=800&h=400&fit=crop",
			OriginalURL:    "https://www.npr.org/2025/08/07/nx-s1-5265650/new-census-trump-immigrants-counted",
			Status:         model.StatusPublished,
		},
		{
			ID:            2,
			OriginalTitle: "Immigrants who are crime victims and waiting for visas now face deportation",
			DisplayTitle:  "U-Visa Recipients Face New Deportation Threats",
			AITitle:       "Crime Victims With Pending Visas Targeted for Deportation",
			AISummary:     "Some immigrants who've applied for U visas as crime victims are being detained as part of the Trump administration's mass deportation campaign. The U visa program was designed to help victims of crimes cooperate with law enforcement, but new policies no longer protect applicants from removal proceedings.",
			Translations: map[string]string{
				model.LocaleChinese: "一些申请U签证的犯罪受害者移民正在被拘留，这是特朗普政府大规模驱逐行动的一部分。U签证项目旨在帮助犯罪受害者与执法部门合作，但新政策不再保护申请人免于驱逐程序。",
			},
			TranslatedTitles: map[string]string{
				model.LocaleChinese: "等待签证的犯罪受害者移民现在面临驱逐",
			},
			Source:         "NBC News",
			Author:         "NBC News Staff",
			ScrapedDate:    "2025-08-07",
			Topic:          "Immigration",
			Priority:       model.PriorityHigh,
			RelevanceScore: 9.0,
			ImageURL:       "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=800&h=400&fit=crop",
			OriginalURL:    "https://www.nbcnews.com/news/latino/immigrants-u-visas-deportation-new-trump-rules-ice-rcna223480",
			Status:         model.StatusPublished,
		},
		{
			ID:            3,
			OriginalTitle: "Trump administration freezes $108M at Duke amid inquiry into alleged racial preferences",
			DisplayTitle:  "Duke University Loses Federal Funding Over DEI Policies",
			AITitle:       "Federal Funding Frozen at Duke Over Discrimination Claims",
			AISummary:     "The Trump administration froze $108 million in research funding to Duke University, accusing the school of racial discrimination through affirmative action policies. This follows similar actions against Harvard, Columbia, and Cornell as part of a broader campaign against diversity, equity and inclusion programs.",
			Translations: map[string]string{
				model.LocaleChinese: "特朗普政府冻结了杜克大学1.08亿美元的研究资金，指控该校通过平权行动政策进行种族歧视。这是继对哈佛、哥伦比亚和康奈尔采取类似行动之后，作为反对多元化、公平和包容项目的更广泛运动的一部分。",
			},
			TranslatedTitles: map[string]string{
				model.LocaleChinese: "特朗普政府因调查涉嫌种族偏好冻结杜克大学1.08亿美元资金",
			},
			Source:         "AP News",
			Author:         "AP Staff",
			ScrapedDate:    "2025-08-07",
			Topic:          "Education",
			Priority:       model.PriorityMedium,
			RelevanceScore: 7.5,
			ImageURL:       "https://images.unsplash.com/photo-1607237138185-eedd9c632b0b?w=800&h=400&fit=crop",
			OriginalURL:    "https://apnews.com/article/duke-university-funding-freeze-trump-dei-23a70359ee44a21fdc55bef6dfe52413",
			Status:         model.StatusPublished,
		},
		{
			ID:            4,
			OriginalTitle: "As Ichiro Suzuki becomes 1st Asian MLB Hall of Famer, Asian players share how he paved the way for them",
			DisplayTitle:  "Ichiro's Historic Hall of Fame Induction Inspires Asian Athletes",
			AITitle:       "Ichiro Breaks Barriers as First Asian MLB Hall of Famer",
			AISummary:     "Ichiro Suzuki becomes the first Asian player inducted into the Baseball Hall of Fame, with Asian American players crediting him for paving the way. His 19-year MLB career included 10 All-Star selections and 10 Gold Glove awards, inspiring a generation of players who saw someone who looked like them succeed at the highest level.",
			Translations: map[string]string{
				model.LocaleChinese: "铃木一朗成为首位入选棒球名人堂的亚洲球员，亚裔美国球员称赞他为后来者铺平了道路。他19年的大联盟职业生涯包括10次全明星入选和10个金手套奖，激励了一代看到像他们一样的人在最高水平上取得成功的球员。",
			},
			TranslatedTitles: map[string]string{
				model.LocaleChinese: "随着铃木一朗成为首位亚洲MLB名人堂成员，亚洲球员分享他如何为他们铺平道路",
			},
			Source:         "NBC News",
			Author:         "NBC News Staff",
			ScrapedDate:    "2025-08-07",
			Topic:          "Culture",
			Priority:       model.PriorityMedium,
			RelevanceScore: 8.0,
			ImageURL:       "https://images.unsplash.com/photo-1566577739112-5180d4bf9390?w=800&h=400&fit=crop",
			OriginalURL:    "https://www.nbcnews.com/news/asian-america/ichiro-suzuki-becomes-1st-asian-mlb-hall-famer-asian-players-rcna220513",
			Status:         model.StatusPublished,
		},
		{
			ID:            5,
			OriginalTitle: "'Voting rights gave you power:' The Voting Rights Act turns 60. Will its promise endure?",
			DisplayTitle:  "Voting Rights Act at 60: Promise Under Threat",
			AITitle:       "60 Years Later, Voting Rights Act Faces New Challenges",
			AISummary:     "On the 60th anniversary of the Voting Rights Act, civil rights lawyers and scholars warn those rights are in danger again. The Trump administration and some Republican-led state legislatures are working to change voting right protections that have stood for decades, while advocates say they're undermining the promises of the Act.",
			Translations: map[string]string{
				model.LocaleChinese: "在《投票权法》60周年之际，民权律师和学者警告这些权利再次面临危险。特朗普政府和一些共和党主导的州立法机构正在努力改变已经存在数十年的投票权保护，而倡导者说他们正在破坏该法案的承诺。",
			},
			TranslatedTitles: map[string]string{
				model.LocaleChinese: "\"投票权给了你力量\"：《投票权法》迎来60周年，其承诺能否持续？",
			},
			Source:         "USA Today",
			Author:         "USA Today Staff",
			ScrapedDate:    "2025-08-07",
			Topic:          "Politics",
			Priority:       model.PriorityMedium,
			RelevanceScore: 7.0,
			ImageURL:       "https://images.unsplash.com/photo-1541872705-1f73c6400ec9?w=800&h=400&fit=crop",
			OriginalURL:    "https://www.usatoday.com/story/news/politics/2025/08/06/voting-right-act-turns-60-protections-risk/85519564007/",
			Status:         model.StatusPublished,
		},
	}
}
